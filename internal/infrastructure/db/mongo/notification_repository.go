package mongo

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/modeboutique/storefront/internal/core/domain"
)

const feedBuffer = 64

// NotificationRepository mirrors notifications into the notifications
// collection and streams inserts through a change stream. Change streams
// need a replica set.
type NotificationRepository struct {
	col *mongo.Collection
	log zerolog.Logger
}

func NewNotificationRepository(db *mongo.Database, log zerolog.Logger) *NotificationRepository {
	return &NotificationRepository{col: db.Collection(collectionNotifications), log: log}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, n)
	return err
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"read": true}})
	return err
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateMany(ctx, bson.M{"read": false}, bson.M{"$set": bson.M{"read": true}})
	return err
}

type insertEvent struct {
	FullDocument domain.Notification `bson:"fullDocument"`
}

// SubscribeInserts watches the collection for inserts. The channel closes
// when ctx ends or the stream fails.
func (r *NotificationRepository) SubscribeInserts(ctx context.Context) (<-chan domain.Notification, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "operationType", Value: "insert"}}}},
	}
	stream, err := r.col.Watch(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	out := make(chan domain.Notification, feedBuffer)
	go func() {
		defer close(out)
		defer stream.Close(context.Background())
		r.pump(ctx, stream, out)
	}()
	return out, nil
}

// eventCursor is the part of *mongo.ChangeStream the feed reads.
type eventCursor interface {
	Next(ctx context.Context) bool
	Decode(val interface{}) error
}

func (r *NotificationRepository) pump(ctx context.Context, cur eventCursor, out chan<- domain.Notification) {
	for cur.Next(ctx) {
		var ev insertEvent
		if err := cur.Decode(&ev); err != nil {
			r.log.Warn().Err(err).Msg("undecodable notification change event")
			continue
		}
		select {
		case out <- ev.FullDocument:
		case <-ctx.Done():
			return
		}
	}
}
