package user

import (
	"context"
	"regexp"
	"time"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/listquery"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{col: db.Collection("users")}
}

// Both backends must exclude soft-deleted rows from default queries.
// In mongo, deleted_at: null matches documents where the field is absent.
func mongoNotDeleted() bson.M {
	return bson.M{"deleted_at": nil}
}

func (r *mongoRepository) Create(ctx context.Context, u *User) error {
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, u)
	return err
}

func (r *mongoRepository) findOne(ctx context.Context, filter bson.M) (*User, error) {
	for k, v := range mongoNotDeleted() {
		filter[k] = v
	}
	var u User
	if err := r.col.FindOne(ctx, filter).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id string) (*User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoRepository) FindByResetToken(ctx context.Context, token string) (*User, error) {
	return r.findOne(ctx, bson.M{"reset_token": token})
}

func (r *mongoRepository) List(ctx context.Context, q listquery.Params, filter ListUsersFilter) ([]User, int64, error) {
	match := mongoNotDeleted()

	if filter.Role != "" {
		match["role"] = filter.Role
	}
	if filter.IsActive != nil {
		match["is_active"] = *filter.IsActive
	}
	if q.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		match["$or"] = bson.A{
			bson.M{"username": re},
			bson.M{"email": re},
			bson.M{"first_name": re},
			bson.M{"last_name": re},
		}
	}

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

	var users []User
	if err := cur.All(ctx, &users); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *mongoRepository) Update(ctx context.Context, u *User) error {
	u.UpdatedAt = time.Now().UTC()
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": u.ID}, u)
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
