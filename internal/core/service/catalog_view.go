package service

import (
	"strings"

	"github.com/modeboutique/storefront/internal/core/domain"
)

// categoryAllAlias is the storefront's French label for the unfiltered view.
const categoryAllAlias = "Tous"

// CatalogView is what the storefront shows for one category/search pair.
type CatalogView struct {
	Articles []domain.Article `json:"articles"`
	Counts   map[string]int   `json:"counts"`
	Total    int              `json:"total"`
}

// PublishedArticles keeps the published articles, order preserved.
func PublishedArticles(articles []domain.Article) []domain.Article {
	out := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if a.Published {
			out = append(out, a)
		}
	}
	return out
}

// FilterArticles narrows the published articles to category (All, Tous or
// empty means every category) and to those whose name, description or
// category contains search, case-insensitively.
func FilterArticles(articles []domain.Article, category, search string) []domain.Article {
	all := category == "" || category == domain.CategoryAll || category == categoryAllAlias
	needle := strings.ToLower(search)

	out := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if !a.Published {
			continue
		}
		if !all && a.Category != category {
			continue
		}
		if needle != "" && !matches(a, needle) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func matches(a domain.Article, needle string) bool {
	return strings.Contains(strings.ToLower(a.Name), needle) ||
		strings.Contains(strings.ToLower(a.Description), needle) ||
		strings.Contains(strings.ToLower(a.Category), needle)
}

// CategoryCounts counts published articles per category. The All entry is
// the published total.
func CategoryCounts(articles []domain.Article) map[string]int {
	counts := map[string]int{domain.CategoryAll: 0}
	for _, a := range articles {
		if !a.Published {
			continue
		}
		counts[domain.CategoryAll]++
		counts[a.Category]++
	}
	return counts
}

// BuildCatalogView combines FilterArticles and CategoryCounts.
func BuildCatalogView(articles []domain.Article, category, search string) CatalogView {
	filtered := FilterArticles(articles, category, search)
	return CatalogView{
		Articles: filtered,
		Counts:   CategoryCounts(articles),
		Total:    len(filtered),
	}
}
