package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/modeboutique/storefront/internal/core/domain"
)

// sessionClientID extracts the client identity injected by the Auth
// middleware. A client session without client_id is structurally valid but
// unusable, so it is rejected with 401.
func sessionClientID(c echo.Context) (string, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	if role != domain.RoleClient {
		return "", echo.NewHTTPError(http.StatusForbidden, "client session required")
	}

	clientID, _ := c.Get("client_id").(string)
	if clientID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "token missing client identity")
	}
	return clientID, nil
}
