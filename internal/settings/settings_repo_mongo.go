package settings

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
	links     *mongo.Collection
	general   *mongo.Collection
	configs   *mongo.Collection
	templates *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{
		links:     db.Collection("social_media_links"),
		general:   db.Collection("general_settings"),
		configs:   db.Collection("email_configs"),
		templates: db.Collection("email_templates"),
	}
}

func (r *mongoRepository) CreateSocialLink(ctx context.Context, link *SocialMediaLink) error {
	now := time.Now().UTC()
	if link.CreatedAt.IsZero() {
		link.CreatedAt = now
	}
	link.UpdatedAt = now
	_, err := r.links.InsertOne(ctx, link)
	return err
}

func (r *mongoRepository) FindSocialLinkByID(ctx context.Context, id string) (*SocialMediaLink, error) {
	var link SocialMediaLink
	if err := r.links.FindOne(ctx, bson.M{"_id": id}).Decode(&link); err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *mongoRepository) ListSocialLinks(ctx context.Context) ([]SocialMediaLink, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}, {Key: "created_at", Value: 1}})
	cur, err := r.links.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var links []SocialMediaLink
	if err := cur.All(ctx, &links); err != nil {
		return nil, err
	}
	return links, nil
}

func (r *mongoRepository) UpdateSocialLink(ctx context.Context, link *SocialMediaLink) error {
	link.UpdatedAt = time.Now().UTC()
	_, err := r.links.ReplaceOne(ctx, bson.M{"_id": link.ID}, link)
	return err
}

func (r *mongoRepository) HardDeleteSocialLink(ctx context.Context, id string) error {
	_, err := r.links.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *mongoRepository) FindGeneralSetting(ctx context.Context) (*GeneralSetting, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	var setting GeneralSetting
	if err := r.general.FindOne(ctx, bson.M{}, opts).Decode(&setting); err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *mongoRepository) SaveGeneralSetting(ctx context.Context, setting *GeneralSetting) error {
	setting.UpdatedAt = time.Now().UTC()
	opts := options.Replace().SetUpsert(true)
	_, err := r.general.ReplaceOne(ctx, bson.M{"_id": setting.ID}, setting, opts)
	return err
}

func (r *mongoRepository) CreateEmailConfig(ctx context.Context, cfg *EmailConfig) error {
	now := time.Now().UTC()
	if cfg.CreatedAt.IsZero() {
		cfg.CreatedAt = now
	}
	cfg.UpdatedAt = now
	_, err := r.configs.InsertOne(ctx, cfg)
	return err
}

func (r *mongoRepository) FindEmailConfigByID(ctx context.Context, id string) (*EmailConfig, error) {
	var cfg EmailConfig
	err := r.configs.FindOne(ctx, bson.M{"_id": id, "deleted_at": nil}).Decode(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *mongoRepository) ListEmailConfigs(ctx context.Context, q listquery.Params) ([]EmailConfig, int64, error) {
	match := bson.M{"deleted_at": nil}
	if q.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		match["$or"] = bson.A{
			bson.M{"config_name": re},
			bson.M{"smtp_host": re},
		}
	}

	total, err := r.configs.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(q.Offset())).
		SetLimit(int64(q.Limit))

	cur, err := r.configs.Find(ctx, match, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var configs []EmailConfig
	if err := cur.All(ctx, &configs); err != nil {
		return nil, 0, err
	}

	return configs, total, nil
}

func (r *mongoRepository) UpdateEmailConfig(ctx context.Context, cfg *EmailConfig) error {
	cfg.UpdatedAt = time.Now().UTC()
	_, err := r.configs.ReplaceOne(ctx, bson.M{"_id": cfg.ID}, cfg)
	return err
}

func (r *mongoRepository) SoftDeleteEmailConfig(ctx context.Context, id string) error {
	_, err := r.configs.UpdateOne(ctx,
		bson.M{"_id": id, "deleted_at": nil},
		bson.M{"$set": bson.M{"deleted_at": time.Now().UTC()}},
	)
	return err
}

func (r *mongoRepository) CreateEmailTemplate(ctx context.Context, t *EmailTemplate) error {
	now := time.Now().UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
	_, err := r.templates.InsertOne(ctx, t)
	return err
}

func (r *mongoRepository) FindEmailTemplateByID(ctx context.Context, id string) (*EmailTemplate, error) {
	var t EmailTemplate
	err := r.templates.FindOne(ctx, bson.M{"_id": id, "deleted_at": nil}).Decode(&t)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *mongoRepository) FindEmailTemplateByCode(ctx context.Context, code string) (*EmailTemplate, error) {
	var t EmailTemplate
	err := r.templates.FindOne(ctx, bson.M{
		"template_code": code,
		"is_active":     true,
		"deleted_at":    nil,
	}).Decode(&t)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *mongoRepository) ListEmailTemplates(ctx context.Context, q listquery.Params) ([]EmailTemplate, int64, error) {
	match := bson.M{"deleted_at": nil}
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

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(q.Offset())).
		SetLimit(int64(q.Limit))

	cur, err := r.templates.Find(ctx, match, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var templates []EmailTemplate
	if err := cur.All(ctx, &templates); err != nil {
		return nil, 0, err
	}

	return templates, total, nil
}

func (r *mongoRepository) UpdateEmailTemplate(ctx context.Context, t *EmailTemplate) error {
	t.UpdatedAt = time.Now().UTC()
	_, err := r.templates.ReplaceOne(ctx, bson.M{"_id": t.ID}, t)
	return err
}

func (r *mongoRepository) SoftDeleteEmailTemplate(ctx context.Context, id string) error {
	_, err := r.templates.UpdateOne(ctx,
		bson.M{"_id": id, "deleted_at": nil},
		bson.M{"$set": bson.M{"deleted_at": time.Now().UTC()}},
	)
	return err
}
