package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Collection names.
const (
	collectionArticles      = "articles"
	collectionOrders        = "orders"
	collectionNotifications = "notifications"
)

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

// EnsureIndexes creates the created_at indexes every listing sorts on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	byNewest := mongo.IndexModel{Keys: bson.D{{Key: "created_at", Value: -1}}}
	for _, name := range []string{collectionArticles, collectionOrders, collectionNotifications} {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, byNewest); err != nil {
			return fmt.Errorf("index %s: %w", name, err)
		}
	}
	_, err := db.Collection(collectionArticles).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "category", Value: 1}, {Key: "published", Value: 1}},
	})
	return err
}

// Pinger reports MongoDB liveness for readiness checks.
type Pinger struct {
	client *mongo.Client
}

func NewPinger(client *mongo.Client) *Pinger {
	return &Pinger{client: client}
}

func (p *Pinger) Name() string { return "mongo" }

func (p *Pinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, nil)
}
