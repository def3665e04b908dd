package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/modeboutique/storefront/internal/core/domain"
	"github.com/modeboutique/storefront/internal/core/ports"
	"github.com/modeboutique/storefront/internal/pkg/clock"
	"github.com/modeboutique/storefront/internal/pkg/metrics"
)

// EchoPolicy decides what happens when the realtime feed delivers a
// notification this instance emitted itself.
type EchoPolicy string

const (
	EchoDeliver  EchoPolicy = "deliver"
	EchoSuppress EchoPolicy = "suppress"
)

const defaultMaxAlerts = 50

// Dependencies are the collaborators of a Store. Orders, Notifications and
// EchoFilter are optional.
type Dependencies struct {
	Articles      ports.ArticleRepository
	Orders        ports.OrderRepository
	Notifications ports.NotificationRepository
	EchoFilter    ports.EchoFilter
	Cache         ports.KeyValueCache
	Credentials   ports.CredentialsProvider
	Clock         clock.Clock
	NewID         func() string
	Logger        zerolog.Logger
}

// Options tune Store behaviour.
type Options struct {
	// RefetchAfterWrite reloads the article list from the backend after every
	// article mutation instead of trusting the local merge.
	RefetchAfterWrite bool
	Echo              EchoPolicy
	MaxAlerts         int
}

// Store is the single source of truth for catalog, accounts, settings,
// notifications and orders. It is safe for concurrent use.
type Store struct {
	articleRepo ports.ArticleRepository
	orderRepo   ports.OrderRepository
	notifRepo   ports.NotificationRepository
	echo        ports.EchoFilter
	cache       ports.KeyValueCache
	creds       ports.CredentialsProvider
	clock       clock.Clock
	newID       func() string
	log         zerolog.Logger
	opts        Options

	mu            sync.RWMutex
	articles      []domain.Article
	clients       []domain.Client
	admin         domain.Admin
	settings      domain.BoutiqueSettings
	notifications []domain.Notification
	orders        []domain.Order
	alerts        []domain.Alert
}

// NewStore builds a Store seeded with defaults. Call Init to load persisted
// state.
func NewStore(deps Dependencies, opts Options) *Store {
	if deps.Clock == nil {
		deps.Clock = clock.RealClock{}
	}
	if deps.NewID == nil {
		deps.NewID = uuid.NewString
	}
	if deps.Credentials == nil {
		deps.Credentials = PlaintextCredentials{}
	}
	if opts.Echo == "" {
		opts.Echo = EchoDeliver
	}
	if opts.MaxAlerts <= 0 {
		opts.MaxAlerts = defaultMaxAlerts
	}
	return &Store{
		articleRepo:   deps.Articles,
		orderRepo:     deps.Orders,
		notifRepo:     deps.Notifications,
		echo:          deps.EchoFilter,
		cache:         deps.Cache,
		creds:         deps.Credentials,
		clock:         deps.Clock,
		newID:         deps.NewID,
		log:           deps.Logger,
		opts:          opts,
		articles:      []domain.Article{},
		clients:       []domain.Client{},
		admin:         domain.DefaultAdmin(),
		settings:      domain.DefaultSettings(),
		notifications: []domain.Notification{},
		orders:        []domain.Order{},
	}
}

// Init loads the cache-backed collections, falling back to defaults for
// anything missing or unreadable, then fetches the catalog. A fetch failure
// is returned but leaves the store usable.
func (s *Store) Init(ctx context.Context) error {
	clients := []domain.Client{}
	notifications := []domain.Notification{}
	orders := []domain.Order{}
	settings := domain.DefaultSettings()
	admin, err := s.defaultAdmin()
	if err != nil {
		return err
	}

	s.cache.Load(ctx, ports.KeyClients, &clients)
	s.cache.Load(ctx, ports.KeyNotifications, &notifications)
	s.cache.Load(ctx, ports.KeyOrders, &orders)
	s.cache.Load(ctx, ports.KeySettings, &settings)
	s.cache.Load(ctx, ports.KeyAdmin, &admin)

	s.mu.Lock()
	s.clients = nonNil(clients)
	s.notifications = nonNil(notifications)
	s.orders = nonNil(orders)
	s.settings = settings
	s.admin = admin
	s.mu.Unlock()

	s.log.Info().
		Int("clients", len(clients)).
		Int("notifications", len(notifications)).
		Int("orders", len(orders)).
		Msg("store state loaded")

	return s.FetchArticles(ctx)
}

func (s *Store) defaultAdmin() (domain.Admin, error) {
	admin := domain.DefaultAdmin()
	sealed, err := s.creds.Seal(admin.Password)
	if err != nil {
		return domain.Admin{}, err
	}
	admin.Password = sealed
	return admin, nil
}

// Settings returns the boutique settings.
func (s *Store) Settings() domain.BoutiqueSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSettings merges patch into the settings and persists the result.
func (s *Store) UpdateSettings(ctx context.Context, patch domain.SettingsPatch) (domain.BoutiqueSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	patch.Apply(&s.settings)
	s.cache.Save(ctx, ports.KeySettings, s.settings)
	return s.settings, nil
}

// Stats summarises the store for the admin dashboard.
func (s *Store) Stats() ports.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	published := 0
	for i := range s.articles {
		if s.articles[i].Published {
			published++
		}
	}
	return ports.Stats{
		TotalArticles:       len(s.articles),
		PublishedArticles:   published,
		TotalClients:        len(s.clients),
		TotalOrders:         len(s.orders),
		UnreadNotifications: s.unreadLocked(),
	}
}

func (s *Store) gatewayFailed(op string, err error) {
	metrics.GatewayErrorsTotal.WithLabelValues(op).Inc()
	s.log.Error().Err(err).Str("op", op).Msg("gateway call failed")
}

func (s *Store) now() time.Time {
	return s.clock.Now()
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}

func prepend[T any](list []T, v T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, v)
	return append(out, list...)
}

// formatAmount renders a price the way it appears in notification texts:
// shortest representation, no grouping.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
