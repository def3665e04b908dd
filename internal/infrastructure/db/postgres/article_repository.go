package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/modeboutique/storefront/internal/core/domain"
)

type articleRow struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	PriceFC     float64        `db:"price_fc"`
	PriceUSD    float64        `db:"price_usd"`
	Category    string         `db:"category"`
	Sizes       pq.StringArray `db:"sizes"`
	Colors      pq.StringArray `db:"colors"`
	Images      pq.StringArray `db:"images"`
	Stock       int            `db:"stock"`
	Published   bool           `db:"published"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func toArticleRow(a *domain.Article) articleRow {
	c := a.Clone()
	return articleRow{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		PriceFC:     c.PriceFC,
		PriceUSD:    c.PriceUSD,
		Category:    c.Category,
		Sizes:       pq.StringArray(c.Sizes),
		Colors:      pq.StringArray(c.Colors),
		Images:      pq.StringArray(c.Images),
		Stock:       c.Stock,
		Published:   c.Published,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (r articleRow) toDomain() domain.Article {
	return domain.Article{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		PriceFC:     r.PriceFC,
		PriceUSD:    r.PriceUSD,
		Category:    r.Category,
		Sizes:       []string(r.Sizes),
		Colors:      []string(r.Colors),
		Images:      []string(r.Images),
		Stock:       r.Stock,
		Published:   r.Published,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}.Clone()
}

// ArticleRepository implements ports.ArticleRepository on the articles table.
type ArticleRepository struct {
	DB *sqlx.DB
}

func NewArticleRepository(db *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{DB: db}
}

func (r *ArticleRepository) List(ctx context.Context) ([]domain.Article, error) {
	var rows []articleRow
	if err := r.DB.SelectContext(ctx, &rows, `SELECT * FROM articles ORDER BY created_at DESC`); err != nil {
		return nil, err
	}
	out := make([]domain.Article, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

func (r *ArticleRepository) Create(ctx context.Context, a *domain.Article) (*domain.Article, error) {
	query := `
        INSERT INTO articles (
            id, name, description, price_fc, price_usd, category,
            sizes, colors, images, stock, published, created_at, updated_at
        )
        VALUES (
            :id, :name, :description, :price_fc, :price_usd, :category,
            :sizes, :colors, :images, :stock, :published, :created_at, :updated_at
        )
        RETURNING *
    `
	rows, err := r.DB.NamedQueryContext(ctx, query, toArticleRow(a))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("insert article %s: no row returned", a.ID)
	}
	var saved articleRow
	if err := rows.StructScan(&saved); err != nil {
		return nil, err
	}
	out := saved.toDomain()
	return &out, nil
}

func (r *ArticleRepository) Update(ctx context.Context, id string, patch domain.ArticlePatch, updatedAt time.Time) error {
	query, args := articleUpdate(id, patch, updatedAt)
	_, err := r.DB.ExecContext(ctx, query, args...)
	return err
}

func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM articles WHERE id = $1`, id)
	return err
}

func (r *ArticleRepository) DeleteAll(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM articles`)
	return err
}

// articleUpdate builds a partial UPDATE touching only the patched columns.
func articleUpdate(id string, p domain.ArticlePatch, updatedAt time.Time) (string, []any) {
	var (
		sets []string
		args []any
	)
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Description != nil {
		add("description", *p.Description)
	}
	if p.PriceFC != nil {
		add("price_fc", *p.PriceFC)
	}
	if p.PriceUSD != nil {
		add("price_usd", *p.PriceUSD)
	}
	if p.Category != nil {
		add("category", domain.NormalizeCategory(*p.Category))
	}
	if p.Sizes != nil {
		add("sizes", pq.StringArray(*p.Sizes))
	}
	if p.Colors != nil {
		add("colors", pq.StringArray(*p.Colors))
	}
	if p.Images != nil {
		add("images", pq.StringArray(*p.Images))
	}
	if p.Stock != nil {
		add("stock", *p.Stock)
	}
	if p.Published != nil {
		add("published", *p.Published)
	}
	add("updated_at", updatedAt)

	args = append(args, id)
	query := fmt.Sprintf("UPDATE articles SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	return query, args
}
