package job

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
	return &mongoRepository{col: db.Collection("jobs")}
}

func mongoNotDeleted() bson.M {
	return bson.M{"deleted_at": nil}
}

func (r *mongoRepository) Create(ctx context.Context, j *Job) error {
	now := time.Now().UTC()
	if j.CreatedAt.IsZero() {
		j.CreatedAt = now
	}
	j.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, j)
	return err
}

func (r *mongoRepository) findOne(ctx context.Context, filter bson.M) (*Job, error) {
	for k, v := range mongoNotDeleted() {
		filter[k] = v
	}
	var j Job
	if err := r.col.FindOne(ctx, filter).Decode(&j); err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id string) (*Job, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoRepository) FindBySlug(ctx context.Context, slug string) (*Job, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *mongoRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	filter := mongoNotDeleted()
	filter["slug"] = slug
	if excludeID != "" {
		filter["_id"] = bson.M{"$ne": excludeID}
	}

	count, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *mongoRepository) List(ctx context.Context, q listquery.Params, filter ListJobsFilter) ([]Job, int64, error) {
	match := mongoNotDeleted()

	if filter.Status != "" {
		match["status"] = filter.Status
	}
	if filter.JobType != "" {
		match["job_type"] = filter.JobType
	}
	if filter.BranchID != "" {
		match["branch_id"] = filter.BranchID
	}
	if q.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		match["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"description": re},
			bson.M{"location": re},
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
		SetSort(bson.D{{Key: q.SortColumn("created_at", jobSortColumns...), Value: order}}).
		SetSkip(int64(q.Offset())).
		SetLimit(int64(q.Limit))

	cur, err := r.col.Find(ctx, match, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var jobs []Job
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *mongoRepository) Update(ctx context.Context, j *Job) error {
	j.UpdatedAt = time.Now().UTC()
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": j.ID}, j)
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

func (r *mongoRepository) IncrementViewCount(ctx context.Context, id string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"view_count": 1}},
	)
	return err
}

func (r *mongoRepository) IncrementApplicationCount(ctx context.Context, id string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"application_count": 1}},
	)
	return err
}
