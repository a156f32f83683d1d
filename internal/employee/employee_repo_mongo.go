package employee

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
	return &mongoRepository{col: db.Collection("employees")}
}

func mongoNotDeleted() bson.M {
	return bson.M{"deleted_at": nil}
}

func (r *mongoRepository) Create(ctx context.Context, e *Employee) error {
	now := time.Now().UTC()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, e)
	return err
}

func (r *mongoRepository) findOne(ctx context.Context, filter bson.M) (*Employee, error) {
	for k, v := range mongoNotDeleted() {
		filter[k] = v
	}
	var e Employee
	if err := r.col.FindOne(ctx, filter).Decode(&e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id string) (*Employee, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoRepository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoRepository) List(ctx context.Context, q listquery.Params, filter ListEmployeesFilter) ([]Employee, int64, error) {
	match := mongoNotDeleted()

	if filter.BranchID != "" {
		match["branch_id"] = filter.BranchID
	}
	if filter.DepartmentID != "" {
		match["department_id"] = filter.DepartmentID
	}
	if filter.IsActive != nil {
		match["is_active"] = *filter.IsActive
	}
	if q.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		match["$or"] = bson.A{
			bson.M{"employee_code": re},
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

	var employees []Employee
	if err := cur.All(ctx, &employees); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

func (r *mongoRepository) Update(ctx context.Context, e *Employee) error {
	e.UpdatedAt = time.Now().UTC()
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": e.ID}, e)
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
