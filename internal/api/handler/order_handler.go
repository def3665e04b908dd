package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/modeboutique/storefront/internal/core/domain"
	"github.com/modeboutique/storefront/internal/core/ports"
	"github.com/modeboutique/storefront/internal/core/service"
	"github.com/modeboutique/storefront/internal/pkg/metrics"
)

// OrderHandler records buyer orders and hands back the WhatsApp link the
// buyer continues on.
type OrderHandler struct {
	catalog  ports.CatalogService
	accounts ports.AccountService
	orders   ports.OrderService
}

func NewOrderHandler(catalog ports.CatalogService, accounts ports.AccountService, orders ports.OrderService) *OrderHandler {
	return &OrderHandler{catalog: catalog, accounts: accounts, orders: orders}
}

// Place handles POST /v1/orders.
//
// @Summary      Order a published article
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      placeOrderRequest  true  "Article to order"
// @Success      201   {object}  placeOrderResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/orders [post]
func (h *OrderHandler) Place(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	clientID, err := sessionClientID(c)
	if err != nil {
		return err
	}
	client, ok := h.accounts.Client(clientID)
	if !ok {
		return domain.ErrClientNotFound
	}
	article, ok := h.catalog.Article(req.ArticleID)
	if !ok || !article.Published {
		return domain.ErrArticleNotFound
	}

	// The order is recorded before the link is handed out.
	message := service.BuildOrderMessage(article, client)
	order, err := h.orders.AddOrder(c.Request().Context(), domain.OrderInput{
		ClientID:    client.ID,
		ClientName:  client.FullName(),
		ClientPhone: client.Phone,
		ArticleID:   article.ID,
		ArticleName: article.Name,
	})
	if err != nil {
		return err
	}

	target := service.ResolveDispatchTarget(h.catalog.Settings(), message)
	metrics.OrdersPlacedTotal.WithLabelValues(target.Kind).Inc()

	return c.JSON(http.StatusCreated, placeOrderResponse{
		Order:        *order,
		DispatchURL:  target.URL,
		DispatchKind: target.Kind,
	})
}
