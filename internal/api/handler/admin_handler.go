package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/modeboutique/storefront/internal/core/domain"
	"github.com/modeboutique/storefront/internal/core/ports"
)

// AdminHandler serves the administrator back office. Every route sits behind
// Auth and RBAC(admin).
type AdminHandler struct {
	catalog   ports.CatalogService
	accounts  ports.AccountService
	orders    ports.OrderService
	dashboard ports.DashboardService
}

func NewAdminHandler(catalog ports.CatalogService, accounts ports.AccountService, orders ports.OrderService, dashboard ports.DashboardService) *AdminHandler {
	return &AdminHandler{catalog: catalog, accounts: accounts, orders: orders, dashboard: dashboard}
}

// ListArticles handles GET /v1/admin/articles, drafts included.
//
// @Summary      List every article
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Article
// @Router       /v1/admin/articles [get]
func (h *AdminHandler) ListArticles(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Articles())
}

// CreateArticle handles POST /v1/admin/articles.
//
// @Summary      Create an article
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      articleRequest  true  "Article"
// @Success      201   {object}  domain.Article
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/articles [post]
func (h *AdminHandler) CreateArticle(c echo.Context) error {
	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	a, err := h.catalog.AddArticle(c.Request().Context(), toArticleInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, a)
}

// UpdateArticle handles PATCH /v1/admin/articles/:id.
//
// @Summary      Partially update an article
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Article id"
// @Param        body  body      articlePatchRequest  true  "Fields to change"
// @Success      200   {object}  domain.Article
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/articles/{id} [patch]
func (h *AdminHandler) UpdateArticle(c echo.Context) error {
	id := c.Param("id")
	var req articlePatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if _, ok := h.catalog.Article(id); !ok {
		return domain.ErrArticleNotFound
	}
	if err := h.catalog.UpdateArticle(c.Request().Context(), id, toArticlePatch(req)); err != nil {
		return err
	}
	return h.writeArticle(c, id)
}

// DeleteArticle handles DELETE /v1/admin/articles/:id. Notifications and
// orders that mention the article are kept.
//
// @Summary      Delete an article
// @Tags         admin
// @Security     BearerAuth
// @Param        id   path  string  true  "Article id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/articles/{id} [delete]
func (h *AdminHandler) DeleteArticle(c echo.Context) error {
	id := c.Param("id")
	if _, ok := h.catalog.Article(id); !ok {
		return domain.ErrArticleNotFound
	}
	if err := h.catalog.DeleteArticle(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// PublishArticle handles POST /v1/admin/articles/:id/publish. Publishing an
// already published article notifies again.
//
// @Summary      Publish an article
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Article id"
// @Success      200  {object}  domain.Article
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/articles/{id}/publish [post]
func (h *AdminHandler) PublishArticle(c echo.Context) error {
	id := c.Param("id")
	if _, ok := h.catalog.Article(id); !ok {
		return domain.ErrArticleNotFound
	}
	if err := h.catalog.PublishArticle(c.Request().Context(), id); err != nil {
		return err
	}
	return h.writeArticle(c, id)
}

// RefreshArticles handles POST /v1/admin/articles/refresh.
//
// @Summary      Reload the catalog from the backend
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Article
// @Failure      500  {object}  errorResponse
// @Router       /v1/admin/articles/refresh [post]
func (h *AdminHandler) RefreshArticles(c echo.Context) error {
	if err := h.catalog.FetchArticles(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.catalog.Articles())
}

// DeleteCatalog handles DELETE /v1/admin/articles.
//
// @Summary      Delete every article
// @Tags         admin
// @Security     BearerAuth
// @Success      204
// @Router       /v1/admin/articles [delete]
func (h *AdminHandler) DeleteCatalog(c echo.Context) error {
	if err := h.catalog.DeleteCatalog(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateSettings handles PATCH /v1/admin/settings.
//
// @Summary      Update boutique settings
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.SettingsPatch  true  "Fields to change"
// @Success      200   {object}  domain.BoutiqueSettings
// @Router       /v1/admin/settings [patch]
func (h *AdminHandler) UpdateSettings(c echo.Context) error {
	var patch domain.SettingsPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	settings, err := h.catalog.UpdateSettings(c.Request().Context(), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// ListClients handles GET /v1/admin/clients.
//
// @Summary      Registered clients
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  clientResponse
// @Router       /v1/admin/clients [get]
func (h *AdminHandler) ListClients(c echo.Context) error {
	return c.JSON(http.StatusOK, toClientResponses(h.accounts.Clients()))
}

// ListOrders handles GET /v1/admin/orders.
//
// @Summary      Orders, newest first
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Order
// @Router       /v1/admin/orders [get]
func (h *AdminHandler) ListOrders(c echo.Context) error {
	return c.JSON(http.StatusOK, h.orders.Orders())
}

// UpdateOrderStatus handles PATCH /v1/admin/orders/:id/status.
//
// @Summary      Advance an order
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Order id"
// @Param        body  body      orderStatusRequest  true  "Next status"
// @Success      200   {object}  domain.Order
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/orders/{id}/status [patch]
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	var req orderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	order, err := h.orders.UpdateOrderStatus(c.Request().Context(), c.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// ChangePassword handles PUT /v1/admin/password.
//
// @Summary      Change the administrator password
// @Tags         admin
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  changePasswordRequest  true  "Current and new password"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/admin/password [put]
func (h *AdminHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.accounts.ChangeAdminPassword(c.Request().Context(), req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Stats handles GET /v1/admin/stats.
//
// @Summary      Dashboard counters
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.Stats
// @Router       /v1/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dashboard.Stats())
}

func (h *AdminHandler) writeArticle(c echo.Context, id string) error {
	a, ok := h.catalog.Article(id)
	if !ok {
		return domain.ErrArticleNotFound
	}
	return c.JSON(http.StatusOK, a)
}
