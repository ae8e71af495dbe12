package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio-service/internal/modules/analytics/domain"
	shareddomain "portfolio-service/pkg/shared/domain"

	"github.com/golangid/candi/tracer"
)

type visitorRepoMongo struct {
	readDB, writeDB *mongo.Database
	collection      string
}

// NewVisitorRepoMongo mongo repo constructor
func NewVisitorRepoMongo(readDB, writeDB *mongo.Database) VisitorRepository {
	return &visitorRepoMongo{
		readDB, writeDB, shareddomain.Visitor{}.CollectionName(),
	}
}

func (r *visitorRepoMongo) buildWhere(filter *domain.FilterVisitorCount) bson.M {
	where := bson.M{}
	if filter.IPAddress != "" {
		where["ipAddress"] = filter.IPAddress
	}
	if filter.IsReturning != nil {
		where["isReturning"] = *filter.IsReturning
	}
	if !filter.Since.IsZero() {
		where["createdAt"] = bson.M{"$gte": filter.Since}
	}
	return where
}

func (r *visitorRepoMongo) FetchAll(ctx context.Context, filter *domain.FilterVisitor) (data []shareddomain.Visitor, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "VisitorRepoMongo:FetchAll")
	defer func() { trace.SetError(err); trace.Finish() }()

	findOptions := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetProjection(bson.M{"userAgent": 0}). // redacted from every report read
		SetLimit(int64(filter.Limit)).
		SetSkip(int64(filter.Offset))

	cur, err := r.readDB.Collection(r.collection).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	err = cur.All(ctx, &data)
	return
}

func (r *visitorRepoMongo) Count(ctx context.Context, filter *domain.FilterVisitorCount) (count int, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "VisitorRepoMongo:Count")
	defer func() { trace.SetError(err); trace.Finish() }()

	where := r.buildWhere(filter)
	trace.SetTag("query", where)

	total, err := r.readDB.Collection(r.collection).CountDocuments(ctx, where)
	return int(total), err
}

// Save appends a new visitor record, this collection is an insert only log
func (r *visitorRepoMongo) Save(ctx context.Context, data *shareddomain.Visitor) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "VisitorRepoMongo:Save")
	defer func() { trace.SetError(err); trace.Finish() }()
	tracer.Log(ctx, "data", data)

	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
	}
	if data.CreatedAt.IsZero() {
		data.CreatedAt = time.Now()
	}
	if data.LastVisit.IsZero() {
		data.LastVisit = data.CreatedAt
	}
	_, err = r.writeDB.Collection(r.collection).InsertOne(ctx, data)
	return
}

func (r *visitorRepoMongo) AggregateDevices(ctx context.Context, since time.Time) (data []domain.DeviceCount, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "VisitorRepoMongo:AggregateDevices")
	defer func() { trace.SetError(err); trace.Finish() }()

	pipeline := []bson.M{
		{"$match": bson.M{"createdAt": bson.M{"$gte": since}}},
		{"$group": bson.M{"_id": "$deviceType", "count": bson.M{"$sum": 1}}},
	}
	cur, err := r.readDB.Collection(r.collection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	err = cur.All(ctx, &data)
	return
}

// AggregateDailyVisits groups records per calendar day in UTC (mongo's
// $dateToString default), ascending, days without visits are not synthesized.
func (r *visitorRepoMongo) AggregateDailyVisits(ctx context.Context, since time.Time) (data []domain.DailyVisit, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "VisitorRepoMongo:AggregateDailyVisits")
	defer func() { trace.SetError(err); trace.Finish() }()

	pipeline := []bson.M{
		{"$match": bson.M{"createdAt": bson.M{"$gte": since}}},
		{"$group": bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$createdAt"}},
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"_id": 1}},
	}
	cur, err := r.readDB.Collection(r.collection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	err = cur.All(ctx, &data)
	return
}
