package smsgateway

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
	configs   *mongo.Collection
	templates *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{
		configs:   db.Collection("sms_configurations"),
		templates: db.Collection("sms_templates"),
	}
}

func mongoNotDeleted() bson.M {
	return bson.M{"deleted_at": nil}
}

func (r *mongoRepository) CreateConfiguration(ctx context.Context, cfg *SmsConfiguration) error {
	now := time.Now().UTC()
	if cfg.CreatedAt.IsZero() {
		cfg.CreatedAt = now
	}
	cfg.UpdatedAt = now
	_, err := r.configs.InsertOne(ctx, cfg)
	return err
}

func (r *mongoRepository) FindConfigurationByID(ctx context.Context, id string) (*SmsConfiguration, error) {
	filter := mongoNotDeleted()
	filter["_id"] = id

	var cfg SmsConfiguration
	if err := r.configs.FindOne(ctx, filter).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *mongoRepository) ListConfigurations(ctx context.Context, q listquery.Params) ([]SmsConfiguration, int64, error) {
	match := mongoNotDeleted()
	if q.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		match["$or"] = bson.A{
			bson.M{"gateway_name": re},
			bson.M{"gateway_code": re},
		}
	}

	total, err := r.configs.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "priority", Value: -1}, {Key: "created_at", Value: -1}}).
		SetSkip(int64(q.Offset())).
		SetLimit(int64(q.Limit))

	cur, err := r.configs.Find(ctx, match, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var configs []SmsConfiguration
	if err := cur.All(ctx, &configs); err != nil {
		return nil, 0, err
	}

	return configs, total, nil
}

func (r *mongoRepository) FindActiveConfiguration(ctx context.Context) (*SmsConfiguration, error) {
	filter := mongoNotDeleted()
	filter["is_active"] = true

	opts := options.FindOne().SetSort(bson.D{{Key: "priority", Value: -1}})

	var cfg SmsConfiguration
	if err := r.configs.FindOne(ctx, filter, opts).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *mongoRepository) UpdateConfiguration(ctx context.Context, cfg *SmsConfiguration) error {
	cfg.UpdatedAt = time.Now().UTC()
	_, err := r.configs.ReplaceOne(ctx, bson.M{"_id": cfg.ID}, cfg)
	return err
}

func (r *mongoRepository) SoftDeleteConfiguration(ctx context.Context, id string) error {
	_, err := r.configs.UpdateOne(ctx,
		bson.M{"_id": id, "deleted_at": nil},
		bson.M{"$set": bson.M{"deleted_at": time.Now().UTC()}},
	)
	return err
}

func (r *mongoRepository) CreateTemplate(ctx context.Context, t *SmsTemplate) error {
	now := time.Now().UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
	_, err := r.templates.InsertOne(ctx, t)
	return err
}

func (r *mongoRepository) FindTemplateByID(ctx context.Context, id string) (*SmsTemplate, error) {
	filter := mongoNotDeleted()
	filter["_id"] = id

	var t SmsTemplate
	if err := r.templates.FindOne(ctx, filter).Decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *mongoRepository) FindTemplateByCode(ctx context.Context, code string) (*SmsTemplate, error) {
	filter := mongoNotDeleted()
	filter["template_code"] = code
	filter["is_active"] = true

	var t SmsTemplate
	if err := r.templates.FindOne(ctx, filter).Decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *mongoRepository) ListTemplates(ctx context.Context, q listquery.Params) ([]SmsTemplate, int64, error) {
	match := mongoNotDeleted()
	if q.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		match["$or"] = bson.A{
			bson.M{"template_code": re},
			bson.M{"name": re},
		}
	}

	total, err := r.templates.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, err
	}

	order := -1
	if q.SortOrder == "asc" {
		order = 1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: order}}).
		SetSkip(int64(q.Offset())).
		SetLimit(int64(q.Limit))

	cur, err := r.templates.Find(ctx, match, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var templates []SmsTemplate
	if err := cur.All(ctx, &templates); err != nil {
		return nil, 0, err
	}

	return templates, total, nil
}

func (r *mongoRepository) UpdateTemplate(ctx context.Context, t *SmsTemplate) error {
	t.UpdatedAt = time.Now().UTC()
	_, err := r.templates.ReplaceOne(ctx, bson.M{"_id": t.ID}, t)
	return err
}

func (r *mongoRepository) SoftDeleteTemplate(ctx context.Context, id string) error {
	_, err := r.templates.UpdateOne(ctx,
		bson.M{"_id": id, "deleted_at": nil},
		bson.M{"$set": bson.M{"deleted_at": time.Now().UTC()}},
	)
	return err
}
