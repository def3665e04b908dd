package ports

import (
	"context"

	"github.com/modeboutique/storefront/internal/core/domain"
)

// CatalogService covers articles and site settings.
type CatalogService interface {
	FetchArticles(ctx context.Context) error
	Articles() []domain.Article
	Article(id string) (domain.Article, bool)
	AddArticle(ctx context.Context, in domain.ArticleInput) (*domain.Article, error)
	UpdateArticle(ctx context.Context, id string, patch domain.ArticlePatch) error
	DeleteArticle(ctx context.Context, id string) error
	PublishArticle(ctx context.Context, id string) error
	DeleteCatalog(ctx context.Context) error
	Settings() domain.BoutiqueSettings
	UpdateSettings(ctx context.Context, patch domain.SettingsPatch) (domain.BoutiqueSettings, error)
}

// AccountService covers buyer and administrator credentials.
type AccountService interface {
	RegisterClient(ctx context.Context, in domain.ClientInput) (*domain.Client, error)
	LoginClient(ctx context.Context, phone, password string) (*domain.Client, error)
	RecoverPassword(ctx context.Context, phone string) (string, error)
	Client(id string) (domain.Client, bool)
	Clients() []domain.Client
	LoginAdmin(ctx context.Context, username, password string) bool
	AdminCredentials() (domain.AdminCredentials, error)
	ChangeAdminPassword(ctx context.Context, current, next string) error
}

// OrderService covers order placement and the admin order list.
type OrderService interface {
	AddOrder(ctx context.Context, in domain.OrderInput) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	Orders() []domain.Order
}

// NotificationService covers the notification list and transient alerts.
type NotificationService interface {
	Notifications() []domain.Notification
	UnreadCount() int
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context) error
	DrainAlerts() []domain.Alert
}

// Stats is the administrator dashboard summary.
type Stats struct {
	TotalArticles       int `json:"total_articles"`
	PublishedArticles   int `json:"published_articles"`
	TotalClients        int `json:"total_clients"`
	TotalOrders         int `json:"total_orders"`
	UnreadNotifications int `json:"unread_notifications"`
}

// DashboardService exposes the admin summary.
type DashboardService interface {
	Stats() Stats
}
