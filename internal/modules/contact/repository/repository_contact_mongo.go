package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio-service/internal/modules/contact/domain"
	shareddomain "portfolio-service/pkg/shared/domain"

	"github.com/golangid/candi/tracer"
)

type contactRepoMongo struct {
	readDB, writeDB *mongo.Database
	collection      string
}

// NewContactRepoMongo mongo repo constructor
func NewContactRepoMongo(readDB, writeDB *mongo.Database) ContactRepository {
	return &contactRepoMongo{
		readDB, writeDB, shareddomain.Contact{}.CollectionName(),
	}
}

func (r *contactRepoMongo) buildWhere(filter *domain.FilterContact) bson.M {
	where := bson.M{}
	if !filter.Since.IsZero() {
		where["createdAt"] = bson.M{"$gte": filter.Since}
	}
	return where
}

func (r *contactRepoMongo) FetchAll(ctx context.Context, filter *domain.FilterContact) (data []shareddomain.Contact, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ContactRepoMongo:FetchAll")
	defer func() { trace.SetError(err); trace.Finish() }()

	where := r.buildWhere(filter)
	trace.SetTag("query", where)

	findOptions := options.Find().SetSort(bson.M{"createdAt": -1})
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

func (r *contactRepoMongo) Count(ctx context.Context, filter *domain.FilterContact) (count int, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ContactRepoMongo:Count")
	defer func() { trace.SetError(err); trace.Finish() }()

	total, err := r.readDB.Collection(r.collection).CountDocuments(ctx, r.buildWhere(filter))
	return int(total), err
}

func (r *contactRepoMongo) Save(ctx context.Context, data *shareddomain.Contact) (err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "ContactRepoMongo:Save")
	defer func() { trace.SetError(err); trace.Finish() }()
	tracer.Log(ctx, "data", data)

	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
	}
	if data.CreatedAt.IsZero() {
		data.CreatedAt = time.Now()
	}
	_, err = r.writeDB.Collection(r.collection).InsertOne(ctx, data)
	return
}
