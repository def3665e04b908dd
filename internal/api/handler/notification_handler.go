package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/modeboutique/storefront/internal/core/ports"
)

type NotificationHandler struct {
	notifications ports.NotificationService
}

func NewNotificationHandler(notifications ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// List handles GET /v1/notifications.
//
// @Summary      Catalog notifications, newest first
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  notificationsResponse
// @Router       /v1/notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, notificationsResponse{
		Notifications: h.notifications.Notifications(),
		Unread:        h.notifications.UnreadCount(),
	})
}

// MarkRead handles POST /v1/notifications/:id/read. Unknown ids are ignored.
//
// @Summary      Mark one notification read
// @Tags         notifications
// @Param        id   path  string  true  "Notification id"
// @Success      204
// @Router       /v1/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	if err := h.notifications.MarkNotificationRead(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// MarkAllRead handles POST /v1/notifications/read-all.
//
// @Summary      Mark every notification read
// @Tags         notifications
// @Success      204
// @Router       /v1/notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	if err := h.notifications.MarkAllNotificationsRead(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Alerts handles GET /v1/alerts. Alerts are handed out once.
//
// @Summary      Drain pending realtime alerts
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  alertsResponse
// @Router       /v1/alerts [get]
func (h *NotificationHandler) Alerts(c echo.Context) error {
	return c.JSON(http.StatusOK, alertsResponse{Alerts: h.notifications.DrainAlerts()})
}
