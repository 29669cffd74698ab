package content

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store on top of a mongo.Database. One store handle
// is created at startup and handed to every handler.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) List(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	return s.find(ctx, collection, filter)
}

func (s *MongoStore) ListNewest(ctx context.Context, collection string) ([]bson.M, error) {
	return s.find(ctx, collection, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
}

func (s *MongoStore) find(ctx context.Context, collection string, filter bson.M, opts ...*options.FindOptions) ([]bson.M, error) {
	cur, err := s.db.Collection(collection).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []bson.M{}
	for cur.Next(ctx) {
		var d bson.M
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, normalizeID(d))
	}
	return out, cur.Err()
}

func (s *MongoStore) FindByRef(ctx context.Context, collection string, ref Ref) (bson.M, error) {
	var d bson.M
	err := s.db.Collection(collection).FindOne(ctx, refFilter(ref)).Decode(&d)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return normalizeID(d), nil
}

func (s *MongoStore) FindSingleton(ctx context.Context, collection string) (bson.M, error) {
	var d bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.M{}).Decode(&d)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return normalizeID(d), nil
}

func (s *MongoStore) NextID(ctx context.Context, collection string) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "id", Value: -1}})
	var last struct {
		ID int `bson:"id"`
	}
	err := s.db.Collection(collection).FindOne(ctx, bson.M{}, opts).Decode(&last)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 1, nil
		}
		return 0, err
	}
	return last.ID + 1, nil
}

func (s *MongoStore) Insert(ctx context.Context, collection string, doc bson.M) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return "", nil
}

func (s *MongoStore) InsertMany(ctx context.Context, collection string, docs []bson.M) error {
	if len(docs) == 0 {
		return nil
	}
	many := make([]interface{}, len(docs))
	for i, d := range docs {
		many[i] = d
	}
	_, err := s.db.Collection(collection).InsertMany(ctx, many)
	return err
}

func (s *MongoStore) UpdateByRef(ctx context.Context, collection string, ref Ref, set bson.M) error {
	res, err := s.db.Collection(collection).UpdateOne(ctx, refFilter(ref), bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) DeleteByRef(ctx context.Context, collection string, ref Ref) error {
	res, err := s.db.Collection(collection).DeleteOne(ctx, refFilter(ref))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) UpsertSingleton(ctx context.Context, collection string, set bson.M) error {
	opts := options.Update().SetUpsert(true)
	_, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{}, bson.M{"$set": set}, opts)
	return err
}

func (s *MongoStore) ReplaceSingleton(ctx context.Context, collection string, doc bson.M) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.db.Collection(collection).ReplaceOne(ctx, bson.M{}, doc, opts)
	return err
}

func (s *MongoStore) Distinct(ctx context.Context, collection, field string) ([]string, error) {
	vals, err := s.db.Collection(collection).Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if sv, ok := v.(string); ok {
			out = append(out, sv)
		}
	}
	return out, nil
}

// refFilter builds the query predicate for a Ref: sequential ids match the
// application "id" field, native refs the Mongo _id.
func refFilter(ref Ref) bson.M {
	if ref.BySequential() {
		return bson.M{"id": ref.Sequential()}
	}
	oid, _ := primitive.ObjectIDFromHex(ref.Native())
	return bson.M{"_id": oid}
}

// normalizeID rewrites the native ObjectID as a plain hex string so every
// caller serializes identifiers the same way.
func normalizeID(d bson.M) bson.M {
	if oid, ok := d["_id"].(primitive.ObjectID); ok {
		d["_id"] = oid.Hex()
	}
	return d
}
