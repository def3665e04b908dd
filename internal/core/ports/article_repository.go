package ports

import (
	"context"
	"time"

	"github.com/modeboutique/storefront/internal/core/domain"
)

// ArticleRepository is the storage backend behind the article collection.
// Implementations exist for the remote gateway (Mongo, Postgres) and for the
// local key-value cache.
type ArticleRepository interface {
	// List returns every article, newest first.
	List(ctx context.Context) ([]domain.Article, error)
	// Create persists a fully built article and returns the saved row.
	Create(ctx context.Context, a *domain.Article) (*domain.Article, error)
	// Update applies patch to the article with the given id and stamps
	// updatedAt. An unknown id is not an error.
	Update(ctx context.Context, id string, patch domain.ArticlePatch, updatedAt time.Time) error
	// Delete removes the article. An unknown id is not an error.
	Delete(ctx context.Context, id string) error
	// DeleteAll wipes the catalog.
	DeleteAll(ctx context.Context) error
}
