package paymentgateway

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/listquery"
)

type mongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{col: db.Collection("payment_configurations")}
}

func (r *mongoRepository) Create(ctx context.Context, cfg *PaymentConfiguration) error {
	now := time.Now().UTC()
	if cfg.CreatedAt.IsZero() {
		cfg.CreatedAt = now
	}
	cfg.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, cfg)
	return err
}

func (r *mongoRepository) FindByID(ctx context.Context, id string) (*PaymentConfiguration, error) {
	var cfg PaymentConfiguration
	err := r.col.FindOne(ctx, bson.M{"_id": id, "deleted_at": nil}).Decode(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *mongoRepository) List(ctx context.Context, q listquery.Params) ([]PaymentConfiguration, int64, error) {
	match := bson.M{"deleted_at": nil}
	if q.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		match["$or"] = bson.A{
			bson.M{"gateway_name": re},
			bson.M{"gateway_code": re},
		}
	}

	total, err := r.col.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "priority", Value: -1}, {Key: "created_at", Value: -1}}).
		SetSkip(int64(q.Offset())).
		SetLimit(int64(q.Limit))

	cur, err := r.col.Find(ctx, match, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var configs []PaymentConfiguration
	if err := cur.All(ctx, &configs); err != nil {
		return nil, 0, err
	}

	return configs, total, nil
}

func (r *mongoRepository) Update(ctx context.Context, cfg *PaymentConfiguration) error {
	cfg.UpdatedAt = time.Now().UTC()
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": cfg.ID}, cfg)
	return err
}

func (r *mongoRepository) SoftDelete(ctx context.Context, id string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "deleted_at": nil},
		bson.M{"$set": bson.M{"deleted_at": time.Now().UTC()}},
	)
	return err
}
