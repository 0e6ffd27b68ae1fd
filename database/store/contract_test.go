package store

import (
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"barbershop/models"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Every backend must satisfy the same contract. The live ones run only when
// a test instance is configured:
//
//	FIRESTORE_EMULATOR_HOST=localhost:8080
//	MONGO_TEST_URI=mongodb://localhost:27017/?replicaSet=rs0
func TestStoreContract(t *testing.T) {
	backends := []struct {
		name string
		mode models.StoreMode
		open func(t *testing.T) Store
	}{
		{"memory", models.StoreModeFallback, func(t *testing.T) Store { return NewMemoryStore() }},
		{"firestore", models.StoreModeLive, openFirestore},
		{"mongo", models.StoreModeLive, openMongo},
	}

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			s := b.open(t)
			t.Cleanup(func() { _ = s.Close() })
			assert.Equal(t, b.mode, s.Mode())
			runContract(t, s)
		})
	}
}

func openFirestore(t *testing.T) Store {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	client, err := firestore.NewClient(context.Background(), "barbershop-test")
	require.NoError(t, err)
	return NewFirestoreStore(client)
}

func openMongo(t *testing.T) Store {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set (change streams need a replica set)")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx, nil))

	dbName := "barbershop_test_" + strings.ReplaceAll(uuid.NewString()[:8], "-", "")
	t.Cleanup(func() { _ = client.Database(dbName).Drop(context.Background()) })
	return NewMongoStore(client, dbName)
}

// scratch returns a collection name no other run shares.
func scratch(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func runContract(t *testing.T, s Store) {
	t.Run("create then get returns an equal record", func(t *testing.T) {
		ctx := context.Background()
		coll := scratch("roundtrip")
		doc := Document{
			"client":   "Jane Doe",
			"total":    37.5,
			"approved": true,
			"items":    []interface{}{"Comb", "Pomade"},
			"verification": map[string]interface{}{
				"verified": false,
				"code":     "123456",
			},
		}
		id, err := s.Create(ctx, coll, doc)
		require.NoError(t, err)
		require.NotEmpty(t, id)
		t.Cleanup(func() { _ = s.Remove(context.Background(), coll, id) })

		got, err := s.Get(ctx, coll, id)
		require.NoError(t, err)
		assert.Equal(t, doc, got)

		records, err := s.List(ctx, coll)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, id, records[0].ID)
		assert.Equal(t, doc, records[0].Data)
	})

	t.Run("get on a missing id is not found", func(t *testing.T) {
		_, err := s.Get(context.Background(), scratch("missing"), "nobody")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update and remove on a missing id are no-ops", func(t *testing.T) {
		ctx := context.Background()
		coll := scratch("noop")

		require.NoError(t, s.Update(ctx, coll, "ghost", Document{"email": "x@example.com"}))
		_, err := s.Get(ctx, coll, "ghost")
		assert.ErrorIs(t, err, ErrNotFound)

		require.NoError(t, s.Remove(ctx, coll, "ghost"))
		require.NoError(t, s.Remove(ctx, coll, "ghost"))
	})

	t.Run("set replaces and update merges dotted keys", func(t *testing.T) {
		ctx := context.Background()
		coll := scratch("merge")
		t.Cleanup(func() { _ = s.Remove(context.Background(), coll, "jdoe") })

		require.NoError(t, s.Set(ctx, coll, "jdoe", Document{"fullName": "Jane", "email": "old@example.com"}))
		require.NoError(t, s.Set(ctx, coll, "jdoe", Document{
			"fullName":     "Jane Doe",
			"verification": map[string]interface{}{"verified": true, "code": "123456"},
		}))
		require.NoError(t, s.Update(ctx, coll, "jdoe", Document{
			"verification.adminApproved": true,
			"email":                      "jane@example.com",
		}))

		got, err := s.Get(ctx, coll, "jdoe")
		require.NoError(t, err)
		assert.Equal(t, Document{
			"fullName": "Jane Doe",
			"email":    "jane@example.com",
			"verification": map[string]interface{}{
				"verified":      true,
				"code":          "123456",
				"adminApproved": true,
			},
		}, got)
	})

	t.Run("remove deletes once and stays idempotent", func(t *testing.T) {
		ctx := context.Background()
		coll := scratch("remove")
		id, err := s.Create(ctx, coll, Document{"name": "Comb"})
		require.NoError(t, err)

		require.NoError(t, s.Remove(ctx, coll, id))
		require.NoError(t, s.Remove(ctx, coll, id))
		_, err = s.Get(ctx, coll, id)
		assert.ErrorIs(t, err, ErrNotFound)
		records, err := s.List(ctx, coll)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("subscribe sees own writes", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		coll := scratch("subscribe")

		var mu sync.Mutex
		var latest []Record
		calls := 0
		unsubscribe, err := s.Subscribe(ctx, coll, func(records []Record) {
			mu.Lock()
			defer mu.Unlock()
			latest = records
			calls++
		})
		require.NoError(t, err)
		defer unsubscribe()

		// the initial snapshot arrives before any write
		require.Eventually(t, func() bool {
			mu.Lock()
			defer mu.Unlock()
			return calls > 0
		}, 5*time.Second, 10*time.Millisecond)

		id, err := s.Create(ctx, coll, Document{"client": "Ben"})
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Remove(context.Background(), coll, id) })

		require.Eventually(t, func() bool {
			mu.Lock()
			defer mu.Unlock()
			return len(latest) == 1 && latest[0].ID == id && latest[0].Data["client"] == "Ben"
		}, 5*time.Second, 10*time.Millisecond)

		require.NoError(t, s.Remove(ctx, coll, id))
		require.Eventually(t, func() bool {
			mu.Lock()
			defer mu.Unlock()
			return len(latest) == 0
		}, 5*time.Second, 10*time.Millisecond)
	})
}
