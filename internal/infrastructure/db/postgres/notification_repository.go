package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/modeboutique/storefront/internal/core/domain"
)

const (
	feedBuffer           = 64
	listenerMinReconnect = 10 * time.Second
	listenerMaxReconnect = time.Minute
	listenerPing         = 90 * time.Second
)

// NotificationRepository mirrors notifications into the notifications table
// and streams inserts with LISTEN/NOTIFY.
type NotificationRepository struct {
	DB  *sqlx.DB
	dsn string
	log zerolog.Logger
}

func NewNotificationRepository(db *sqlx.DB, dsn string, log zerolog.Logger) *NotificationRepository {
	return &NotificationRepository{DB: db, dsn: dsn, log: log}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	query := `
        INSERT INTO notifications (id, article_id, article_name, message, read, created_at)
        VALUES (:id, :article_id, :article_name, :message, :read, :created_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, n)
	return err
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1`, id)
	return err
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE notifications SET read = TRUE WHERE read = FALSE`)
	return err
}

// SubscribeInserts listens on the insert channel fed by the schema trigger.
// The listener reconnects on its own; the returned channel closes when ctx
// ends.
func (r *NotificationRepository) SubscribeInserts(ctx context.Context) (<-chan domain.Notification, error) {
	listener := pq.NewListener(r.dsn, listenerMinReconnect, listenerMaxReconnect, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			r.log.Warn().Err(err).Int("event", int(ev)).Msg("notification listener")
		}
	})
	if err := listener.Listen(channelNotificationsInsert); err != nil {
		_ = listener.Close()
		return nil, err
	}

	out := make(chan domain.Notification, feedBuffer)
	go func() {
		defer close(out)
		defer listener.Close()

		ticker := time.NewTicker(listenerPing)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				go func() { _ = listener.Ping() }()
			case msg, ok := <-listener.Notify:
				if !ok {
					return
				}
				// nil after a reconnect; inserts made while disconnected are lost.
				if msg == nil {
					continue
				}
				n, err := decodeNotification(msg.Extra)
				if err != nil {
					r.log.Warn().Err(err).Msg("undecodable notification payload")
					continue
				}
				select {
				case out <- n:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

// decodeNotification parses the row_to_json payload of the insert trigger.
func decodeNotification(payload string) (domain.Notification, error) {
	var n domain.Notification
	if err := json.Unmarshal([]byte(payload), &n); err != nil {
		return domain.Notification{}, err
	}
	n.CreatedAt = n.CreatedAt.UTC()
	return n, nil
}
