// Package local provides process-local backends for deployments without a
// remote database. Articles persist through the key-value cache.
package local

import (
	"context"
	"sync"
	"time"

	"github.com/modeboutique/storefront/internal/core/domain"
	"github.com/modeboutique/storefront/internal/core/ports"
)

// ArticleRepository keeps the catalog in memory and writes the whole list
// to the cache after every change.
type ArticleRepository struct {
	mu       sync.Mutex
	cache    ports.KeyValueCache
	articles []domain.Article
}

// NewArticleRepository loads the persisted catalog. When nothing is
// persisted and seed is non-empty, seed becomes the catalog.
func NewArticleRepository(ctx context.Context, cache ports.KeyValueCache, seed []domain.Article) *ArticleRepository {
	r := &ArticleRepository{cache: cache, articles: []domain.Article{}}
	if !cache.Load(ctx, ports.KeyArticles, &r.articles) && len(seed) > 0 {
		r.articles = cloneAll(seed)
		cache.Save(ctx, ports.KeyArticles, r.articles)
	}
	if r.articles == nil {
		r.articles = []domain.Article{}
	}
	return r
}

func (r *ArticleRepository) List(_ context.Context) ([]domain.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneAll(r.articles), nil
}

func (r *ArticleRepository) Create(ctx context.Context, a *domain.Article) (*domain.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	saved := a.Clone()
	r.articles = append([]domain.Article{saved}, r.articles...)
	r.cache.Save(ctx, ports.KeyArticles, r.articles)
	out := saved.Clone()
	return &out, nil
}

func (r *ArticleRepository) Update(ctx context.Context, id string, patch domain.ArticlePatch, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.articles {
		if r.articles[i].ID == id {
			patch.Apply(&r.articles[i])
			r.articles[i].UpdatedAt = updatedAt
			r.cache.Save(ctx, ports.KeyArticles, r.articles)
			return nil
		}
	}
	return nil
}

func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.articles {
		if r.articles[i].ID == id {
			r.articles = append(r.articles[:i:i], r.articles[i+1:]...)
			r.cache.Save(ctx, ports.KeyArticles, r.articles)
			return nil
		}
	}
	return nil
}

func (r *ArticleRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.articles = []domain.Article{}
	r.cache.Save(ctx, ports.KeyArticles, r.articles)
	return nil
}

func cloneAll(in []domain.Article) []domain.Article {
	out := make([]domain.Article, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
