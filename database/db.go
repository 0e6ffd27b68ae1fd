package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"barbershop/config"
	"barbershop/database/store"
	"barbershop/utils"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// MongoClient is set when the MongoDB backend is selected.
var MongoClient *mongo.Client

// FirestoreClient is set when the Firestore backend is selected.
var FirestoreClient *firestore.Client

// InitFirestore connects to Firestore with the configured service account.
func InitFirestore(ctx context.Context) (*firestore.Client, error) {
	path := config.AppConfig.FirebaseCredentialsFile
	sa, ok := config.ReadServiceAccount(path)
	if !ok {
		return nil, fmt.Errorf("firebase credentials not usable: %q", path)
	}
	projectID := config.AppConfig.FirebaseProjectID
	if projectID == "" {
		projectID = sa.ProjectID
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, option.WithCredentialsFile(path))
	if err != nil {
		return nil, fmt.Errorf("firebase: error initializing app: %w", err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase: error getting Firestore client: %w", err)
	}
	FirestoreClient = client
	return client, nil
}

// InitDB initializes the MongoDB connection.
func InitDB(ctx context.Context) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	MongoClient = client
	return client, nil
}

// OpenStore picks the store backend once for the lifetime of the process.
// "auto" uses Firestore when credentials are present and falls back to the
// in-process store otherwise. An explicitly requested live backend that
// cannot be reached is an error.
func OpenStore(ctx context.Context) (store.Store, error) {
	logger := utils.GetLogger()
	backend := strings.ToLower(strings.TrimSpace(config.AppConfig.StoreBackend))

	switch backend {
	case "memory":
		logger.Info("store: using in-process collections")
		return store.NewMemoryStore(), nil

	case "mongo":
		client, err := InitDB(ctx)
		if err != nil {
			return nil, err
		}
		logger.Info("store: connected to MongoDB", zap.String("database", config.AppConfig.DatabaseName))
		return store.NewMongoStore(client, config.AppConfig.DatabaseName), nil

	case "firestore":
		client, err := InitFirestore(ctx)
		if err != nil {
			return nil, err
		}
		logger.Info("store: connected to Firestore")
		return store.NewFirestoreStore(client), nil

	case "", "auto":
		if !config.IsFirebaseConfigured() {
			logger.Warn("store: Firebase not configured, running on in-process collections")
			return store.NewMemoryStore(), nil
		}
		client, err := InitFirestore(ctx)
		if err != nil {
			logger.Warn("store: Firestore unavailable, running on in-process collections", zap.Error(err))
			return store.NewMemoryStore(), nil
		}
		logger.Info("store: connected to Firestore")
		return store.NewFirestoreStore(client), nil

	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", config.AppConfig.StoreBackend)
	}
}
