package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/modeboutique/storefront/internal/core/domain"
	"github.com/modeboutique/storefront/internal/core/ports"
	"github.com/modeboutique/storefront/internal/core/service"
)

// CatalogHandler serves the public storefront: published articles and the
// boutique settings.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List handles GET /v1/catalog.
//
// @Summary      Browse published articles
// @Tags         catalog
// @Produce      json
// @Param        category  query     string  false  "Category filter (All or empty for every category)"
// @Param        q         query     string  false  "Case-insensitive search on name, description and category"
// @Success      200       {object}  catalogResponse
// @Router       /v1/catalog [get]
func (h *CatalogHandler) List(c echo.Context) error {
	view := service.BuildCatalogView(h.catalog.Articles(), c.QueryParam("category"), c.QueryParam("q"))
	return c.JSON(http.StatusOK, catalogResponse{
		Articles:   view.Articles,
		Counts:     view.Counts,
		Total:      view.Total,
		Categories: domain.Categories,
	})
}

// Get handles GET /v1/catalog/:id. Unpublished articles are reported as
// missing.
//
// @Summary      Get a published article
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Article id"
// @Success      200  {object}  domain.Article
// @Failure      404  {object}  errorResponse
// @Router       /v1/catalog/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	a, ok := h.catalog.Article(c.Param("id"))
	if !ok || !a.Published {
		return domain.ErrArticleNotFound
	}
	return c.JSON(http.StatusOK, a)
}

// Settings handles GET /v1/settings.
//
// @Summary      Boutique settings
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  domain.BoutiqueSettings
// @Router       /v1/settings [get]
func (h *CatalogHandler) Settings(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Settings())
}
