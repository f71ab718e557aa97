package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dreamhome/realestate-api/internal/core/domain"
)

const collectionWishlists = "wishLists"

type WishlistRepository struct {
	col *mongo.Collection
}

func NewWishlistRepository(db *mongo.Database) *WishlistRepository {
	return &WishlistRepository{col: db.Collection(collectionWishlists)}
}

func (r *WishlistRepository) Create(ctx context.Context, w *domain.WishlistItem) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, w)
	if err != nil {
		return "", fmt.Errorf("insert wishlist item: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert wishlist item: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *WishlistRepository) List(ctx context.Context, userEmail string) ([]*domain.WishlistItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if userEmail != "" {
		filter["user_email"] = userEmail
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list wishlist items: %w", err)
	}
	defer cur.Close(ctx)

	var items []*domain.WishlistItem
	for cur.Next(ctx) {
		var w domain.WishlistItem
		if err := cur.Decode(&w); err != nil {
			return nil, fmt.Errorf("decode wishlist item: %w", err)
		}
		items = append(items, &w)
	}
	return items, cur.Err()
}

func (r *WishlistRepository) FindByID(ctx context.Context, id string) (*domain.WishlistItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrWishlistItemNotFound
	}

	var w domain.WishlistItem
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&w); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWishlistItemNotFound
		}
		return nil, fmt.Errorf("find wishlist item: %w", err)
	}
	return &w, nil
}

func (r *WishlistRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrWishlistItemNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete wishlist item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrWishlistItemNotFound
	}
	return nil
}
