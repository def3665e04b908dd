package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/modeboutique/storefront/internal/api/handler"
	"github.com/modeboutique/storefront/internal/api/middleware"
	"github.com/modeboutique/storefront/internal/core/domain"
	"github.com/modeboutique/storefront/internal/core/ports"
)

// Services is everything the HTTP layer calls into. A *service.Store
// satisfies every store-backed field.
type Services struct {
	Catalog       ports.CatalogService
	Accounts      ports.AccountService
	Orders        ports.OrderService
	Notifications ports.NotificationService
	Dashboard     ports.DashboardService
	Sessions      ports.SessionIssuer
	Disclosure    ports.CredentialDisclosure
}

// RouterConfig carries the non-service inputs of NewRouter.
type RouterConfig struct {
	JWTSecret string
	Logger    zerolog.Logger
	Pingers   []handler.Pinger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(cfg.Logger))

	// --- Handlers ---
	catalogHandler := handler.NewCatalogHandler(svc.Catalog)
	authHandler := handler.NewAuthHandler(svc.Accounts, svc.Sessions, svc.Disclosure)
	orderHandler := handler.NewOrderHandler(svc.Catalog, svc.Accounts, svc.Orders)
	notificationHandler := handler.NewNotificationHandler(svc.Notifications)
	adminHandler := handler.NewAdminHandler(svc.Catalog, svc.Accounts, svc.Orders, svc.Dashboard)
	healthHandler := handler.NewHealthHandler(cfg.Pingers...)

	authMiddleware := middleware.Auth(cfg.JWTSecret)
	maintenance := middleware.Maintenance(svc.Catalog)

	// --- Health probes and metrics (no auth required) ---
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Auth routes ---
	clientAuth := e.Group("/auth/clients", maintenance)
	clientAuth.POST("/register", authHandler.RegisterClient)
	clientAuth.POST("/login", authHandler.LoginClient)
	clientAuth.POST("/recover", authHandler.RecoverPassword)
	e.POST("/auth/admin/login", authHandler.LoginAdmin)
	e.GET("/auth/admin/login", authHandler.DisclosedCredentials)

	// --- Storefront ---
	v1 := e.Group("/v1")
	v1.GET("/settings", catalogHandler.Settings)

	shop := v1.Group("", maintenance)
	shop.GET("/catalog", catalogHandler.List)
	shop.GET("/catalog/:id", catalogHandler.Get)
	shop.GET("/notifications", notificationHandler.List)
	shop.POST("/notifications/read-all", notificationHandler.MarkAllRead)
	shop.POST("/notifications/:id/read", notificationHandler.MarkRead)
	shop.GET("/alerts", notificationHandler.Alerts)
	shop.POST("/orders", orderHandler.Place, authMiddleware, middleware.RBAC(domain.RoleClient))

	// --- Back office ---
	admin := v1.Group("/admin", authMiddleware, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/articles", adminHandler.ListArticles)
	admin.POST("/articles", adminHandler.CreateArticle)
	admin.DELETE("/articles", adminHandler.DeleteCatalog)
	admin.POST("/articles/refresh", adminHandler.RefreshArticles)
	admin.PATCH("/articles/:id", adminHandler.UpdateArticle)
	admin.DELETE("/articles/:id", adminHandler.DeleteArticle)
	admin.POST("/articles/:id/publish", adminHandler.PublishArticle)
	admin.PATCH("/settings", adminHandler.UpdateSettings)
	admin.GET("/clients", adminHandler.ListClients)
	admin.GET("/orders", adminHandler.ListOrders)
	admin.PATCH("/orders/:id/status", adminHandler.UpdateOrderStatus)
	admin.PUT("/password", adminHandler.ChangePassword)
	admin.GET("/stats", adminHandler.Stats)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
