package domain

import (
	"errors"
	"time"
)

// Catalog categories. CategoryOther also absorbs articles saved without one.
const (
	CategoryAll   = "All"
	CategoryOther = "Autre"
)

// Categories is the closed set an article may belong to, in display order.
var Categories = []string{
	"Robes",
	"Costumes",
	"T-Shirts",
	"Jeans",
	"Vestes",
	"Chaussures",
	"Accessoires",
	"Sous-vêtements",
	"Sport",
	"Enfants",
	CategoryOther,
}

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrInvalidArticle  = errors.New("invalid article")
)

// IsValidCategory reports whether c belongs to Categories.
func IsValidCategory(c string) bool {
	for _, known := range Categories {
		if known == c {
			return true
		}
	}
	return false
}

// NormalizeCategory maps an empty category to CategoryOther.
func NormalizeCategory(c string) string {
	if c == "" {
		return CategoryOther
	}
	return c
}

// Article is a sellable catalog product priced in two fixed currencies.
// Images[0], when present, is the primary image.
type Article struct {
	ID          string    `json:"id" bson:"_id" db:"id"`
	Name        string    `json:"name" bson:"name" db:"name"`
	Description string    `json:"description" bson:"description" db:"description"`
	PriceFC     float64   `json:"price_fc" bson:"price_fc" db:"price_fc"`
	PriceUSD    float64   `json:"price_usd" bson:"price_usd" db:"price_usd"`
	Category    string    `json:"category" bson:"category" db:"category"`
	Sizes       []string  `json:"sizes" bson:"sizes" db:"-"`
	Colors      []string  `json:"colors" bson:"colors" db:"-"`
	Images      []string  `json:"images" bson:"images" db:"-"`
	Stock       int       `json:"stock" bson:"stock" db:"stock"`
	Published   bool      `json:"published" bson:"published" db:"published"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at" db:"updated_at"`
}

// Validate checks the numeric invariants of an article.
func (a *Article) Validate() error {
	if a.Name == "" || a.PriceFC < 0 || a.PriceUSD < 0 || a.Stock < 0 {
		return ErrInvalidArticle
	}
	return nil
}

// ArticleInput carries the administrator-supplied fields of a new article.
type ArticleInput struct {
	Name        string
	Description string
	PriceFC     float64
	PriceUSD    float64
	Category    string
	Sizes       []string
	Colors      []string
	Images      []string
	Stock       int
	Published   bool
}

// ArticlePatch is a partial article update. Nil fields are left untouched.
type ArticlePatch struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	PriceFC     *float64  `json:"price_fc,omitempty"`
	PriceUSD    *float64  `json:"price_usd,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Sizes       *[]string `json:"sizes,omitempty"`
	Colors      *[]string `json:"colors,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	Stock       *int      `json:"stock,omitempty"`
	Published   *bool     `json:"published,omitempty"`
}

// Apply merges the patch into a. ID and CreatedAt are never touched.
func (p ArticlePatch) Apply(a *Article) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.PriceFC != nil {
		a.PriceFC = *p.PriceFC
	}
	if p.PriceUSD != nil {
		a.PriceUSD = *p.PriceUSD
	}
	if p.Category != nil {
		a.Category = NormalizeCategory(*p.Category)
	}
	if p.Sizes != nil {
		a.Sizes = cloneStrings(*p.Sizes)
	}
	if p.Colors != nil {
		a.Colors = cloneStrings(*p.Colors)
	}
	if p.Images != nil {
		a.Images = cloneStrings(*p.Images)
	}
	if p.Stock != nil {
		a.Stock = *p.Stock
	}
	if p.Published != nil {
		a.Published = *p.Published
	}
}

// Clone returns a deep copy so callers cannot alias the store's slices.
func (a Article) Clone() Article {
	a.Sizes = cloneStrings(a.Sizes)
	a.Colors = cloneStrings(a.Colors)
	a.Images = cloneStrings(a.Images)
	return a
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
