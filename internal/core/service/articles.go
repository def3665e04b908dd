package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/modeboutique/storefront/internal/core/domain"
	"github.com/modeboutique/storefront/internal/pkg/metrics"
)

const (
	newArticleFormat       = "🆕 Nouvel article disponible: %s - %s FC / %s USD"
	publishedArticleFormat = "📢 Article publié: %s - %s FC / %s USD"
)

// FetchArticles replaces the article list with the backend's. On failure the
// previous list is kept.
func (s *Store) FetchArticles(ctx context.Context) error {
	list, err := s.articleRepo.List(ctx)
	if err != nil {
		s.gatewayFailed("fetch_articles", err)
		return fmt.Errorf("fetch articles: %w", err)
	}

	fresh := make([]domain.Article, len(list))
	for i := range list {
		fresh[i] = list[i].Clone()
	}

	s.mu.Lock()
	s.articles = fresh
	s.mu.Unlock()

	s.log.Debug().Int("count", len(fresh)).Msg("articles fetched")
	return nil
}

// Articles returns a copy of the catalog, newest first.
func (s *Store) Articles() []domain.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Article, len(s.articles))
	for i := range s.articles {
		out[i] = s.articles[i].Clone()
	}
	return out
}

// Article looks up one article by id.
func (s *Store) Article(id string) (domain.Article, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.articleIndex(id); i >= 0 {
		return s.articles[i].Clone(), true
	}
	return domain.Article{}, false
}

// AddArticle creates an article, prepends it to the catalog and, when it is
// published, emits a new-article notification.
func (s *Store) AddArticle(ctx context.Context, in domain.ArticleInput) (*domain.Article, error) {
	now := s.now()
	a := domain.Article{
		ID:          s.newID(),
		Name:        in.Name,
		Description: in.Description,
		PriceFC:     in.PriceFC,
		PriceUSD:    in.PriceUSD,
		Category:    domain.NormalizeCategory(in.Category),
		Sizes:       in.Sizes,
		Colors:      in.Colors,
		Images:      in.Images,
		Stock:       in.Stock,
		Published:   in.Published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	a = a.Clone()
	if err := a.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.articleRepo.Create(ctx, &a)
	if err != nil {
		s.gatewayFailed("add_article", err)
		return nil, fmt.Errorf("add article: %w", err)
	}
	out := saved.Clone()

	s.mu.Lock()
	s.articles = prepend(s.articles, out.Clone())
	s.mu.Unlock()

	metrics.ArticlesCreatedTotal.WithLabelValues(strconv.FormatBool(out.Published)).Inc()
	s.log.Info().Str("article_id", out.ID).Str("name", out.Name).Bool("published", out.Published).Msg("article created")

	if out.Published {
		s.emitNotification(ctx, out, fmt.Sprintf(newArticleFormat, out.Name, formatAmount(out.PriceFC), formatAmount(out.PriceUSD)))
	}
	s.refetch(ctx)
	return &out, nil
}

// UpdateArticle merges patch into the article and refreshes its UpdatedAt.
// An unknown id is a no-op.
func (s *Store) UpdateArticle(ctx context.Context, id string, patch domain.ArticlePatch) error {
	current, ok := s.Article(id)
	if !ok {
		return nil
	}
	patch.Apply(&current)
	if err := current.Validate(); err != nil {
		return err
	}

	now := s.now()
	if err := s.articleRepo.Update(ctx, id, patch, now); err != nil {
		s.gatewayFailed("update_article", err)
		return fmt.Errorf("update article %s: %w", id, err)
	}

	s.mu.Lock()
	if i := s.articleIndex(id); i >= 0 {
		patch.Apply(&s.articles[i])
		s.articles[i].UpdatedAt = now
	}
	s.mu.Unlock()

	s.log.Info().Str("article_id", id).Msg("article updated")
	s.refetch(ctx)
	return nil
}

// DeleteArticle removes the article. Notifications and orders that reference
// it are kept. An unknown id is a no-op.
func (s *Store) DeleteArticle(ctx context.Context, id string) error {
	if _, ok := s.Article(id); !ok {
		return nil
	}
	if err := s.articleRepo.Delete(ctx, id); err != nil {
		s.gatewayFailed("delete_article", err)
		return fmt.Errorf("delete article %s: %w", id, err)
	}

	s.mu.Lock()
	if i := s.articleIndex(id); i >= 0 {
		s.articles = append(s.articles[:i:i], s.articles[i+1:]...)
	}
	s.mu.Unlock()

	s.log.Info().Str("article_id", id).Msg("article deleted")
	s.refetch(ctx)
	return nil
}

// PublishArticle marks the article published and always emits a
// published-article notification, even if it already was published.
func (s *Store) PublishArticle(ctx context.Context, id string) error {
	current, ok := s.Article(id)
	if !ok {
		return nil
	}

	published := true
	now := s.now()
	if err := s.articleRepo.Update(ctx, id, domain.ArticlePatch{Published: &published}, now); err != nil {
		s.gatewayFailed("publish_article", err)
		return fmt.Errorf("publish article %s: %w", id, err)
	}

	s.mu.Lock()
	if i := s.articleIndex(id); i >= 0 {
		s.articles[i].Published = true
		s.articles[i].UpdatedAt = now
	}
	s.mu.Unlock()

	metrics.ArticlesPublishedTotal.Inc()
	s.log.Info().Str("article_id", id).Msg("article published")

	s.emitNotification(ctx, current, fmt.Sprintf(publishedArticleFormat, current.Name, formatAmount(current.PriceFC), formatAmount(current.PriceUSD)))
	s.refetch(ctx)
	return nil
}

// DeleteCatalog removes every article.
func (s *Store) DeleteCatalog(ctx context.Context) error {
	if err := s.articleRepo.DeleteAll(ctx); err != nil {
		s.gatewayFailed("delete_catalog", err)
		return fmt.Errorf("delete catalog: %w", err)
	}

	s.mu.Lock()
	removed := len(s.articles)
	s.articles = []domain.Article{}
	s.mu.Unlock()

	s.log.Warn().Int("removed", removed).Msg("catalog wiped")
	return nil
}

func (s *Store) refetch(ctx context.Context) {
	if !s.opts.RefetchAfterWrite {
		return
	}
	// Errors are already logged; the locally merged state stays.
	_ = s.FetchArticles(ctx)
}

// articleIndex must be called with s.mu held.
func (s *Store) articleIndex(id string) int {
	for i := range s.articles {
		if s.articles[i].ID == id {
			return i
		}
	}
	return -1
}
