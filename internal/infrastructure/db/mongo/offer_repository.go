package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dreamhome/realestate-api/internal/core/domain"
)

const collectionOffers = "makeOffers"

type OfferRepository struct {
	col *mongo.Collection
}

func NewOfferRepository(db *mongo.Database) *OfferRepository {
	return &OfferRepository{col: db.Collection(collectionOffers)}
}

func (r *OfferRepository) Create(ctx context.Context, o *domain.Offer) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, o)
	if err != nil {
		return "", fmt.Errorf("insert offer: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert offer: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *OfferRepository) FindByID(ctx context.Context, id string) (*domain.Offer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOfferNotFound
	}

	var o domain.Offer
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&o); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOfferNotFound
		}
		return nil, fmt.Errorf("find offer: %w", err)
	}
	return &o, nil
}

func (r *OfferRepository) List(ctx context.Context, buyerEmail, agentEmail string) ([]*domain.Offer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if buyerEmail != "" {
		filter["buyer_email"] = buyerEmail
	}
	if agentEmail != "" {
		filter["agent_email"] = agentEmail
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer cur.Close(ctx)

	var offers []*domain.Offer
	for cur.Next(ctx) {
		var o domain.Offer
		if err := cur.Decode(&o); err != nil {
			return nil, fmt.Errorf("decode offer: %w", err)
		}
		offers = append(offers, &o)
	}
	return offers, cur.Err()
}

func (r *OfferRepository) UpdateStatus(ctx context.Context, id string, status domain.OfferStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrOfferNotFound
	}

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update offer status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrOfferNotFound
	}
	return nil
}

func (r *OfferRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrOfferNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete offer: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrOfferNotFound
	}
	return nil
}
