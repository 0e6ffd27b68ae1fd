package store

import (
	"context"
	"errors"

	"barbershop/models"
	"barbershop/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoStore is the alternative live backend. Subscriptions ride on change
// streams, so the server must run as a replica set.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoStore(client *mongo.Client, dbName string) *MongoStore {
	return &MongoStore{client: client, db: client.Database(dbName)}
}

func (m *MongoStore) Mode() models.StoreMode {
	return models.StoreModeLive
}

func (m *MongoStore) Create(ctx context.Context, collection string, doc Document) (string, error) {
	id := uuid.NewString()
	body := withID(doc, id)
	if _, err := m.db.Collection(collection).InsertOne(ctx, body); err != nil {
		return "", utils.StoreError("create "+collection, err)
	}
	return id, nil
}

func (m *MongoStore) Set(ctx context.Context, collection, id string, doc Document) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := m.db.Collection(collection).ReplaceOne(ctx, bson.M{"_id": id}, withID(doc, id), opts); err != nil {
		return utils.StoreError("set "+collection, err)
	}
	return nil
}

func (m *MongoStore) Update(ctx context.Context, collection, id string, partial Document) error {
	if len(partial) == 0 {
		return nil
	}
	update := bson.M{"$set": bson.M(partial)}
	if _, err := m.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return utils.StoreError("update "+collection, err)
	}
	return nil
}

func (m *MongoStore) Remove(ctx context.Context, collection, id string) error {
	if _, err := m.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return utils.StoreError("remove "+collection, err)
	}
	return nil
}

func (m *MongoStore) Get(ctx context.Context, collection, id string) (Document, error) {
	var raw bson.M
	err := m.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, utils.StoreError("get "+collection, err)
	}
	_, doc := splitID(raw)
	return doc, nil
}

func (m *MongoStore) List(ctx context.Context, collection string) ([]Record, error) {
	cursor, err := m.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, utils.StoreError("list "+collection, err)
	}
	defer cursor.Close(ctx)

	var raws []bson.M
	if err := cursor.All(ctx, &raws); err != nil {
		return nil, utils.StoreError("list "+collection, err)
	}
	records := make([]Record, 0, len(raws))
	for _, raw := range raws {
		id, doc := splitID(raw)
		records = append(records, Record{ID: id, Data: doc})
	}
	return records, nil
}

// Subscribe opens a change stream before taking the initial snapshot so no
// mutation between the two is missed. Every change event triggers a re-read.
func (m *MongoStore) Subscribe(ctx context.Context, collection string, fn ChangeFunc) (func(), error) {
	subCtx, cancel := context.WithCancel(ctx)
	stream, err := m.db.Collection(collection).Watch(subCtx, mongo.Pipeline{})
	if err != nil {
		cancel()
		return nil, utils.StoreError("subscribe "+collection, err)
	}
	logger := utils.GetLogger()

	go func() {
		defer stream.Close(context.Background())

		emit := func() {
			records, err := m.List(subCtx, collection)
			if err != nil {
				if subCtx.Err() == nil {
					logger.Error("mongo: failed to refresh snapshot", zap.String("collection", collection), zap.Error(err))
				}
				return
			}
			fn(records)
		}

		emit()
		for stream.Next(subCtx) {
			emit()
		}
		if err := stream.Err(); err != nil && subCtx.Err() == nil {
			logger.Error("mongo: change stream stopped", zap.String("collection", collection), zap.Error(err))
		}
	}()

	return cancel, nil
}

func (m *MongoStore) Close() error {
	return m.client.Disconnect(context.Background())
}

func withID(doc Document, id string) bson.M {
	body := bson.M{}
	for k, v := range doc {
		body[k] = v
	}
	body["_id"] = id
	return body
}

func splitID(raw bson.M) (string, Document) {
	id, _ := raw["_id"].(string)
	doc := Document{}
	for k, v := range raw {
		if k == "_id" {
			continue
		}
		doc[k] = normalize(v)
	}
	return id, doc
}

// normalize turns driver container types into plain maps and slices so that
// documents look the same whichever backend produced them.
func normalize(v interface{}) interface{} {
	switch t := v.(type) {
	case bson.M:
		out := make(map[string]interface{}, len(t))
		for k, e := range t {
			out[k] = normalize(e)
		}
		return out
	case bson.D:
		out := make(map[string]interface{}, len(t))
		for _, e := range t {
			out[e.Key] = normalize(e.Value)
		}
		return out
	case bson.A:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = normalize(e)
		}
		return out
	default:
		return v
	}
}
