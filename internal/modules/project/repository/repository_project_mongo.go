package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio-service/internal/modules/project/domain"
	shareddomain "portfolio-service/pkg/shared/domain"

	"github.com/golangid/candi/candihelper"
	"github.com/golangid/candi/tracer"
)

type projectRepoMongo struct {
	readDB, writeDB *mongo.Database
	collection      string
}

// NewProjectRepoMongo mongo repo constructor
func NewProjectRepoMongo(readDB, writeDB *mongo.Database) ProjectRepository {
	return &projectRepoMongo{
		readDB, writeDB, shareddomain.Project{}.CollectionName(),
	}
}

func (r *projectRepoMongo) buildWhere(filter *domain.FilterProject) bson.M {
	where := bson.M{}
	if filter.ID != nil {
		if objectID, err := primitive.ObjectIDFromHex(*filter.ID); err == nil {
			where["_id"] = objectID
		} else {
			where["_id"] = *filter.ID
		}
	}
	if filter.Category != "" {
		where["category"] = filter.Category
	}
	if filter.Status != "" {
		where["status"] = filter.Status
	}
	if filter.Featured != nil {
		where["featured"] = *filter.Featured
	}
	return where
}

func (r *projectRepoMongo) FetchAll(ctx context.Context, filter *domain.FilterProject) (data []shareddomain.Project, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ProjectRepoMongo:FetchAll")
	defer func() { trace.SetError(err); trace.Finish() }()

	where := r.buildWhere(filter)
	trace.SetTag("query", where)

	findOptions := options.Find()
	if filter.OrderBy != "" {
		sort := 1
		if filter.Sort == "desc" {
			sort = -1
		}
		findOptions.SetSort(bson.M{filter.OrderBy: sort})
	} else {
		// featured projects first, then curated order, newest last in ties
		findOptions.SetSort(bson.D{{Key: "featured", Value: -1}, {Key: "order", Value: 1}, {Key: "createdAt", Value: -1}})
	}
	if !filter.ShowAll {
		findOptions.SetLimit(int64(filter.Limit))
		findOptions.SetSkip(int64(filter.Offset))
	}

	cur, err := r.readDB.Collection(r.collection).Find(ctx, where, findOptions)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	err = cur.All(ctx, &data)
	return
}

func (r *projectRepoMongo) Count(ctx context.Context, filter *domain.FilterProject) (count int, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ProjectRepoMongo:Count")
	defer func() { trace.SetError(err); trace.Finish() }()

	total, err := r.readDB.Collection(r.collection).CountDocuments(ctx, r.buildWhere(filter))
	return int(total), err
}

func (r *projectRepoMongo) Find(ctx context.Context, filter *domain.FilterProject) (result shareddomain.Project, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ProjectRepoMongo:Find")
	defer func() { trace.SetError(err); trace.Finish() }()

	where := r.buildWhere(filter)
	trace.SetTag("query", where)

	err = r.readDB.Collection(r.collection).FindOne(ctx, where).Decode(&result)
	return
}

func (r *projectRepoMongo) Save(ctx context.Context, data *shareddomain.Project) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ProjectRepoMongo:Save")
	defer func() { trace.SetError(err); trace.Finish() }()
	tracer.Log(ctx, "data", data)

	data.UpdatedAt = time.Now()
	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
		data.CreatedAt = time.Now()
		_, err = r.writeDB.Collection(r.collection).InsertOne(ctx, data)
	} else {
		opt := options.UpdateOptions{
			Upsert: candihelper.ToBoolPtr(true),
		}
		_, err = r.writeDB.Collection(r.collection).UpdateOne(ctx,
			bson.M{"_id": data.ID},
			bson.M{"$set": data},
			&opt)
	}
	return
}

func (r *projectRepoMongo) Delete(ctx context.Context, filter *domain.FilterProject) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ProjectRepoMongo:Delete")
	defer func() { trace.SetError(err); trace.Finish() }()

	res, err := r.writeDB.Collection(r.collection).DeleteOne(ctx, r.buildWhere(filter))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// IncrementViews bumps the view counter with an atomic $inc and returns the
// updated record, so a detail fetch is a single document operation.
func (r *projectRepoMongo) IncrementViews(ctx context.Context, id string) (result shareddomain.Project, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ProjectRepoMongo:IncrementViews")
	defer func() { trace.SetError(err); trace.Finish() }()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return result, mongo.ErrNoDocuments
	}

	opt := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = r.writeDB.Collection(r.collection).FindOneAndUpdate(ctx,
		bson.M{"_id": objectID},
		bson.M{"$inc": bson.M{"views": 1}},
		opt).Decode(&result)
	return
}

func (r *projectRepoMongo) IncrementLikes(ctx context.Context, id string) (result shareddomain.Project, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ProjectRepoMongo:IncrementLikes")
	defer func() { trace.SetError(err); trace.Finish() }()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return result, mongo.ErrNoDocuments
	}

	opt := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = r.writeDB.Collection(r.collection).FindOneAndUpdate(ctx,
		bson.M{"_id": objectID},
		bson.M{"$inc": bson.M{"likes": 1}},
		opt).Decode(&result)
	return
}

func (r *projectRepoMongo) SumViews(ctx context.Context) (total int, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ProjectRepoMongo:SumViews")
	defer func() { trace.SetError(err); trace.Finish() }()

	pipeline := []bson.M{
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$views"}}},
	}
	cur, err := r.readDB.Collection(r.collection).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var results []struct {
		Total int `bson:"total"`
	}
	if err = cur.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

func (r *projectRepoMongo) FetchPopular(ctx context.Context, limit int) (data []shareddomain.Project, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ProjectRepoMongo:FetchPopular")
	defer func() { trace.SetError(err); trace.Finish() }()

	findOptions := options.Find().
		SetSort(bson.M{"views": -1}).
		SetLimit(int64(limit)).
		SetProjection(bson.M{"title": 1, "views": 1, "likes": 1})

	cur, err := r.readDB.Collection(r.collection).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	err = cur.All(ctx, &data)
	return
}
