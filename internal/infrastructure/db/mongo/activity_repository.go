package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dreamhome/realestate-api/internal/core/domain"
)

const collectionActivities = "activities"

type ActivityRepository struct {
	col *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{col: db.Collection(collectionActivities)}
}

func (r *ActivityRepository) Create(ctx context.Context, e *domain.ActivityEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, e); err != nil {
		return fmt.Errorf("insert activity event: %w", err)
	}
	return nil
}

func (r *ActivityRepository) List(ctx context.Context, actor string, limit int64) ([]*domain.ActivityEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if actor != "" {
		filter["actor"] = actor
	}
	if limit <= 0 {
		limit = 100
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "at", Value: -1}}).SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list activity events: %w", err)
	}
	defer cur.Close(ctx)

	var events []*domain.ActivityEvent
	for cur.Next(ctx) {
		var e domain.ActivityEvent
		if err := cur.Decode(&e); err != nil {
			return nil, fmt.Errorf("decode activity event: %w", err)
		}
		events = append(events, &e)
	}
	return events, cur.Err()
}
