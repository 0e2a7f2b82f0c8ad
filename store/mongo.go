package store

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const keyField = "_id"

// MongoStore implements Store on a MongoDB database. Record keys are kept in _id.
type MongoStore struct {
	db      *mongo.Database
	timeout time.Duration
}

func NewMongoStore(db *mongo.Database, timeout time.Duration) *MongoStore {
	return &MongoStore{db: db, timeout: timeout}
}

/*
* Open a client for the uri
* Ping the primary so a bad uri fails at startup rather than on first request
 */
func Connect(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, unavailable("connect", uri, err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, unavailable("ping", uri, err)
	}
	log.Info().Str("uri", uri).Msg("connected to mongo")
	return client, nil
}

func (s *MongoStore) Get(ctx context.Context, collection, key string) (Document, bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	doc := bson.M{}
	err := s.db.Collection(collection).FindOne(ctx, bson.M{keyField: key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, unavailable("get", collection, err)
	}
	return stripKey(doc), true, nil
}

func (s *MongoStore) Put(ctx context.Context, collection, key string, doc Document) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	replacement := copyDocument(doc)
	replacement[keyField] = key
	_, err := s.db.Collection(collection).ReplaceOne(ctx, bson.M{keyField: key}, replacement, options.Replace().SetUpsert(true))
	if err != nil {
		return unavailable("put", collection, err)
	}
	return nil
}

/*
* Flatten nested documents into dotted paths
* $set the paths with upsert so untouched fields and sub-fields survive
 */
func (s *MongoStore) Merge(ctx context.Context, collection, key string, partial Document) error {
	set := flatten("", partial, bson.M{})
	if len(set) == 0 {
		return nil
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	_, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{keyField: key}, bson.M{"$set": set}, options.Update().SetUpsert(true))
	if err != nil {
		return unavailable("merge", collection, err)
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, collection, key string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if _, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{keyField: key}); err != nil {
		return unavailable("delete", collection, err)
	}
	return nil
}

func (s *MongoStore) QueryEqual(ctx context.Context, collection string, preds ...Predicate) ([]Record, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	cursor, err := s.db.Collection(collection).Find(ctx, buildFilter(preds))
	if err != nil {
		return nil, unavailable("query", collection, err)
	}
	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, unavailable("query", collection, err)
	}
	records := make([]Record, 0, len(docs))
	for _, doc := range docs {
		key, _ := doc[keyField].(string)
		records = append(records, Record{Key: key, Doc: stripKey(doc)})
	}
	return records, nil
}

func (s *MongoStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func buildFilter(preds []Predicate) bson.M {
	filter := bson.M{}
	for _, p := range preds {
		filter[p.Field] = p.Value
	}
	return filter
}

func flatten(prefix string, doc Document, out bson.M) bson.M {
	for k, v := range doc {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if sub, ok := asDocument(v); ok {
			flatten(path, sub, out)
			continue
		}
		out[path] = v
	}
	return out
}

func stripKey(doc bson.M) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		if k == keyField {
			continue
		}
		out[k] = v
	}
	return out
}
