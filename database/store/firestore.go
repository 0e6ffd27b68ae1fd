package store

import (
	"context"
	"errors"
	"strings"

	"barbershop/models"
	"barbershop/utils"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore is the live backend. Every client process talking to the
// same project sees the same collections and receives pushed snapshots.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (f *FirestoreStore) Mode() models.StoreMode {
	return models.StoreModeLive
}

func (f *FirestoreStore) Create(ctx context.Context, collection string, doc Document) (string, error) {
	ref, _, err := f.client.Collection(collection).Add(ctx, map[string]interface{}(doc))
	if err != nil {
		return "", utils.StoreError("create "+collection, err)
	}
	return ref.ID, nil
}

func (f *FirestoreStore) Set(ctx context.Context, collection, id string, doc Document) error {
	if _, err := f.client.Collection(collection).Doc(id).Set(ctx, map[string]interface{}(doc)); err != nil {
		return utils.StoreError("set "+collection, err)
	}
	return nil
}

func (f *FirestoreStore) Update(ctx context.Context, collection, id string, partial Document) error {
	if len(partial) == 0 {
		return nil
	}
	updates := make([]firestore.Update, 0, len(partial))
	for k, v := range partial {
		updates = append(updates, firestore.Update{FieldPath: firestore.FieldPath(strings.Split(k, ".")), Value: v})
	}
	_, err := f.client.Collection(collection).Doc(id).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return nil
	}
	if err != nil {
		return utils.StoreError("update "+collection, err)
	}
	return nil
}

func (f *FirestoreStore) Remove(ctx context.Context, collection, id string) error {
	if _, err := f.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return utils.StoreError("remove "+collection, err)
	}
	return nil
}

func (f *FirestoreStore) Get(ctx context.Context, collection, id string) (Document, error) {
	snap, err := f.client.Collection(collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, utils.StoreError("get "+collection, err)
	}
	return Document(snap.Data()), nil
}

func (f *FirestoreStore) List(ctx context.Context, collection string) ([]Record, error) {
	docs, err := f.client.Collection(collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, utils.StoreError("list "+collection, err)
	}
	return toRecords(docs), nil
}

func (f *FirestoreStore) Subscribe(ctx context.Context, collection string, fn ChangeFunc) (func(), error) {
	subCtx, cancel := context.WithCancel(ctx)
	it := f.client.Collection(collection).Snapshots(subCtx)
	logger := utils.GetLogger()

	go func() {
		defer it.Stop()
		for {
			snap, err := it.Next()
			if err != nil {
				if errors.Is(err, iterator.Done) || subCtx.Err() != nil || status.Code(err) == codes.Canceled {
					return
				}
				logger.Error("firestore: snapshot listener stopped", zap.String("collection", collection), zap.Error(err))
				return
			}
			docs, err := snap.Documents.GetAll()
			if err != nil {
				logger.Error("firestore: failed to read snapshot", zap.String("collection", collection), zap.Error(err))
				continue
			}
			fn(toRecords(docs))
		}
	}()

	return cancel, nil
}

func (f *FirestoreStore) Close() error {
	return f.client.Close()
}

func toRecords(docs []*firestore.DocumentSnapshot) []Record {
	records := make([]Record, 0, len(docs))
	for _, d := range docs {
		records = append(records, Record{ID: d.Ref.ID, Data: Document(d.Data())})
	}
	return records
}
