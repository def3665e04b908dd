package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
)

const defaultTimeout = 5 * time.Second

// Config captures the settings for a PostgreSQL connection pool.
type Config struct {
	DSN     string
	Timeout time.Duration
}

// Connect opens a pool and validates connectivity with a ping.
func Connect(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	db, err := sqlx.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return db, nil
}

const channelNotificationsInsert = "notifications_insert"

const schema = `
CREATE TABLE IF NOT EXISTS articles (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    price_fc    DOUBLE PRECISION NOT NULL DEFAULT 0,
    price_usd   DOUBLE PRECISION NOT NULL DEFAULT 0,
    category    TEXT NOT NULL DEFAULT 'Autre',
    sizes       TEXT[] NOT NULL DEFAULT '{}',
    colors      TEXT[] NOT NULL DEFAULT '{}',
    images      TEXT[] NOT NULL DEFAULT '{}',
    stock       INTEGER NOT NULL DEFAULT 0,
    published   BOOLEAN NOT NULL DEFAULT FALSE,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS articles_created_at_idx ON articles (created_at DESC);

CREATE TABLE IF NOT EXISTS orders (
    id           TEXT PRIMARY KEY,
    client_id    TEXT NOT NULL,
    client_name  TEXT NOT NULL,
    client_phone TEXT NOT NULL,
    article_id   TEXT NOT NULL,
    article_name TEXT NOT NULL,
    status       TEXT NOT NULL DEFAULT 'pending',
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS notifications (
    id           TEXT PRIMARY KEY,
    article_id   TEXT NOT NULL,
    article_name TEXT NOT NULL,
    message      TEXT NOT NULL,
    read         BOOLEAN NOT NULL DEFAULT FALSE,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE OR REPLACE FUNCTION notify_notification_insert() RETURNS trigger AS $$
BEGIN
    PERFORM pg_notify('` + channelNotificationsInsert + `', row_to_json(NEW)::text);
    RETURN NEW;
END;
$$ LANGUAGE plpgsql;

DROP TRIGGER IF EXISTS notifications_insert_notify ON notifications;
CREATE TRIGGER notifications_insert_notify
    AFTER INSERT ON notifications
    FOR EACH ROW EXECUTE FUNCTION notify_notification_insert();
`

// EnsureSchema creates the tables and the insert trigger that feeds
// LISTEN subscribers.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("postgres schema: %w", err)
	}
	return nil
}

// Pinger reports PostgreSQL liveness for readiness checks.
type Pinger struct {
	db *sqlx.DB
}

func NewPinger(db *sqlx.DB) *Pinger {
	return &Pinger{db: db}
}

func (p *Pinger) Name() string { return "postgres" }

func (p *Pinger) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}
