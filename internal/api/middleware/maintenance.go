package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/modeboutique/storefront/internal/core/domain"
)

// SettingsSource is read on every request.
type SettingsSource interface {
	Settings() domain.BoutiqueSettings
}

// Maintenance answers 503 while the boutique is in maintenance mode.
func Maintenance(src SettingsSource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if src.Settings().Maintenance {
				c.Response().Header().Set("Retry-After", "300")
				return echo.NewHTTPError(http.StatusServiceUnavailable, "boutique under maintenance")
			}
			return next(c)
		}
	}
}
