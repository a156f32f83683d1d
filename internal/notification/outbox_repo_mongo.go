package notification

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoOutboxRepository struct {
	col *mongo.Collection
}

func NewMongoOutboxRepository(db *mongo.Database) OutboxRepository {
	return &mongoOutboxRepository{col: db.Collection("outbox_events")}
}

func (r *mongoOutboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	doc := bson.M{
		"_id":            event.ID,
		"request_id":     event.RequestID,
		"aggregate_type": event.AggregateType,
		"aggregate_id":   event.AggregateID,
		"event_type":     event.EventType,
		"topic":          event.Topic,
		"payload":        event.Payload,
		"status":         event.Status,
		"retry_count":    0,
		"created_at":     time.Now().UTC(),
		"updated_at":     time.Now().UTC(),
	}
	_, err := r.col.InsertOne(ctx, doc)
	return err
}

func (r *mongoOutboxRepository) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	now := time.Now().UTC()
	filter := bson.M{
		"status": bson.M{"$in": bson.A{OutboxStatusPending, OutboxStatusFailed}},
		"$or": bson.A{
			bson.M{"next_retry_at": bson.M{"$exists": false}},
			bson.M{"next_retry_at": bson.M{"$lte": now}},
		},
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var events []OutboxEvent
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *mongoOutboxRepository) MarkSent(ctx context.Context, id string) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{
			"status":       OutboxStatusSent,
			"processed_at": time.Now().UTC(),
			"updated_at":   time.Now().UTC(),
		},
		"$unset": bson.M{"error_message": ""},
	})
	return err
}

func (r *mongoOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	if len(reason) > 500 {
		reason = reason[:500]
	}

	var current OutboxEvent
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&current); err != nil {
		return err
	}

	retries := current.RetryCount + 1
	backoff := retries
	if backoff > 10 {
		backoff = 10
	}

	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{
			"status":        OutboxStatusFailed,
			"retry_count":   retries,
			"error_message": reason,
			"next_retry_at": time.Now().UTC().Add(time.Duration(backoff) * 15 * time.Second),
			"updated_at":    time.Now().UTC(),
		},
	})
	return err
}
