package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/modeboutique/storefront/internal/api"
	"github.com/modeboutique/storefront/internal/api/handler"
	"github.com/modeboutique/storefront/internal/core/domain"
	"github.com/modeboutique/storefront/internal/core/ports"
	"github.com/modeboutique/storefront/internal/core/service"
	"github.com/modeboutique/storefront/internal/infrastructure/db/mongo"
	"github.com/modeboutique/storefront/internal/infrastructure/db/postgres"
	"github.com/modeboutique/storefront/internal/infrastructure/db/redis"
	"github.com/modeboutique/storefront/internal/infrastructure/kvcache"
	"github.com/modeboutique/storefront/internal/infrastructure/local"
	"github.com/modeboutique/storefront/internal/infrastructure/queue"
	"github.com/modeboutique/storefront/internal/pkg/clock"
	"github.com/modeboutique/storefront/internal/pkg/config"
	"github.com/modeboutique/storefront/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// backend is what the selected store backend contributes to the wiring.
type backend struct {
	articles      ports.ArticleRepository
	orders        ports.OrderRepository
	notifications ports.NotificationRepository
	feed          ports.NotificationFeed
	pingers       []handler.Pinger
	close         func()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Load configuration (.env first, then the environment)
	cfg, err := config.Load(ctx)
	if err != nil {
		boot := zerolog.New(os.Stderr)
		boot.Fatal().Err(err).Msg("invalid configuration")
	}

	// 2. Initialise logger
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "storefront",
		Env:     cfg.Env,
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	clk := clock.RealClock{}
	var pingers []handler.Pinger

	// 3. Redis, when the cache or the echo filter needs it
	var rdb *goredis.Client
	if cfg.UsesRedis() {
		var err error
		rdb, err = redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer rdb.Close()
		pingers = append(pingers, redis.NewPinger(rdb))
		log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")
	}

	// 4. Key-value cache
	var blobs ports.BlobStore = kvcache.NewMemoryBlobs()
	if cfg.Cache.Backend == config.CacheRedis {
		blobs = redis.NewBlobStore(rdb, cfg.Redis.Prefix)
	}
	cache := kvcache.New(blobs, logger.Component("cache"))

	// 5. Store backend
	be, err := openBackend(ctx, cfg, cache, clk, log)
	if err != nil {
		return err
	}
	defer be.close()
	pingers = append(pingers, be.pingers...)

	var echoFilter ports.EchoFilter
	if cfg.Realtime.Echo == string(service.EchoSuppress) {
		if rdb != nil {
			echoFilter = redis.NewEchoFilter(rdb, cfg.Redis.Prefix, instanceID())
		} else {
			echoFilter = local.NewEchoFilter(clk)
		}
	}

	// 6. Store
	var creds ports.CredentialsProvider = service.PlaintextCredentials{}
	if cfg.CredentialsMode == "bcrypt" {
		creds = service.BcryptCredentials{}
	}

	store := service.NewStore(service.Dependencies{
		Articles:      be.articles,
		Orders:        be.orders,
		Notifications: be.notifications,
		EchoFilter:    echoFilter,
		Cache:         cache,
		Credentials:   creds,
		Clock:         clk,
		Logger:        logger.Component("store"),
	}, service.Options{
		RefetchAfterWrite: cfg.Store.RefetchAfterWrite,
		Echo:              service.EchoPolicy(cfg.Realtime.Echo),
		MaxAlerts:         cfg.MaxAlerts,
	})
	if err := store.Init(ctx); err != nil {
		// The store stays usable on its cached state; the catalog can be
		// refreshed from the back office once the backend is back.
		log.Error().Err(err).Msg("initial catalog fetch failed")
	}

	// 7. Realtime notification feed
	var feed *queue.Feed
	if cfg.Realtime.Enabled && be.feed != nil {
		feed = queue.NewFeed(be.feed, store, cfg.Realtime.Retry, logger.Component("feed"))
		feed.Start(ctx)
		log.Info().Str("echo", cfg.Realtime.Echo).Msg("realtime feed started")
	}

	// 8. HTTP server
	e := api.NewRouter(api.Services{
		Catalog:       store,
		Accounts:      store,
		Orders:        store,
		Notifications: store,
		Dashboard:     store,
		Sessions:      service.NewSessionIssuer(cfg.JWTSecret, cfg.SessionTTL, clk),
		Disclosure:    service.NewDisclosureGate(store.AdminCredentials, clk),
	}, api.RouterConfig{
		JWTSecret: cfg.JWTSecret,
		Logger:    logger.Component("http"),
		Pingers:   pingers,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.Store.Backend).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Graceful shutdown
	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	log.Info().Msg("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if feed != nil {
		feed.Wait()
	}
	log.Info().Msg("server stopped")
	return nil
}

func openBackend(ctx context.Context, cfg *config.Config, cache ports.KeyValueCache, clk clock.Clock, log zerolog.Logger) (*backend, error) {
	switch cfg.Store.Backend {
	case config.BackendMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		if err := mongo.EnsureIndexes(ctx, db); err != nil {
			log.Warn().Err(err).Msg("mongo index creation failed")
		}
		log.Info().Str("db", cfg.Mongo.Database).Msg("connected to mongo")

		notifications := mongo.NewNotificationRepository(db, logger.Component("mongo"))
		be := &backend{
			articles: mongo.NewArticleRepository(db),
			feed:     notifications,
			pingers:  []handler.Pinger{mongo.NewPinger(client)},
			close: func() {
				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				_ = client.Disconnect(ctx)
			},
		}
		if cfg.Store.SyncOrders {
			be.orders = mongo.NewOrderRepository(db)
		}
		if cfg.Store.SyncNotifications {
			be.notifications = notifications
		}
		return be, nil

	case config.BackendPostgres:
		db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		log.Info().Msg("connected to postgres")

		notifications := postgres.NewNotificationRepository(db, cfg.Postgres.DSN, logger.Component("postgres"))
		be := &backend{
			articles: postgres.NewArticleRepository(db),
			feed:     notifications,
			pingers:  []handler.Pinger{postgres.NewPinger(db)},
			close:    func() { _ = db.Close() },
		}
		if cfg.Store.SyncOrders {
			be.orders = postgres.NewOrderRepository(db)
		}
		if cfg.Store.SyncNotifications {
			be.notifications = notifications
		}
		return be, nil

	default:
		var seed []domain.Article
		if cfg.SeedSamples {
			seed = domain.SampleArticles(clk.Now())
		}
		return &backend{
			articles: local.NewArticleRepository(ctx, cache, seed),
			close:    func() {},
		}, nil
	}
}

// instanceID scopes echo suppression to this process.
func instanceID() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "storefront"
	}
	return host + "-" + uuid.NewString()[:8]
}
