package userskill

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/listquery"
)

type mongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{col: db.Collection("user_skills")}
}

func (r *mongoRepository) Create(ctx context.Context, s *UserSkill) error {
	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, s)
	return err
}

func (r *mongoRepository) FindByID(ctx context.Context, id string) (*UserSkill, error) {
	var s UserSkill
	err := r.col.FindOne(ctx, bson.M{"_id": id, "deleted_at": nil}).Decode(&s)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *mongoRepository) ListByUser(ctx context.Context, userID string, q listquery.Params) ([]UserSkill, int64, error) {
	match := bson.M{"user_id": userID, "deleted_at": nil}

	total, err := r.col.CountDocuments(ctx, match)
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

	cur, err := r.col.Find(ctx, match, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var skills []UserSkill
	if err := cur.All(ctx, &skills); err != nil {
		return nil, 0, err
	}

	return skills, total, nil
}

func (r *mongoRepository) Update(ctx context.Context, s *UserSkill) error {
	s.UpdatedAt = time.Now().UTC()
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	return err
}

func (r *mongoRepository) SoftDelete(ctx context.Context, id string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "deleted_at": nil},
		bson.M{"$set": bson.M{
			"deleted_at": time.Now().UTC(),
			"updated_at": time.Now().UTC(),
		}},
	)
	return err
}
