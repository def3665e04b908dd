package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/modeboutique/storefront/internal/core/domain"
)

// ArticleRepository implements ports.ArticleRepository on the articles collection.
type ArticleRepository struct {
	col *mongo.Collection
}

func NewArticleRepository(db *mongo.Database) *ArticleRepository {
	return &ArticleRepository{col: db.Collection(collectionArticles)}
}

// List returns every article, newest first.
func (r *ArticleRepository) List(ctx context.Context) ([]domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	articles := []domain.Article{}
	if err := cur.All(ctx, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// Create inserts a new article document and returns it as stored.
func (r *ArticleRepository) Create(ctx context.Context, a *domain.Article) (*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, a); err != nil {
		return nil, err
	}
	saved := a.Clone()
	return &saved, nil
}

// Update sets the patched fields and updated_at. Unknown ids match nothing.
func (r *ArticleRepository) Update(ctx context.Context, id string, patch domain.ArticlePatch, updatedAt time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateByID(ctx, id, bson.M{"$set": articleSet(patch, updatedAt)})
	return err
}

func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// DeleteAll wipes the collection.
func (r *ArticleRepository) DeleteAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteMany(ctx, bson.M{})
	return err
}

// articleSet builds the $set document for a partial update.
func articleSet(p domain.ArticlePatch, updatedAt time.Time) bson.M {
	set := bson.M{"updated_at": updatedAt.UTC()}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.PriceFC != nil {
		set["price_fc"] = *p.PriceFC
	}
	if p.PriceUSD != nil {
		set["price_usd"] = *p.PriceUSD
	}
	if p.Category != nil {
		set["category"] = domain.NormalizeCategory(*p.Category)
	}
	if p.Sizes != nil {
		set["sizes"] = *p.Sizes
	}
	if p.Colors != nil {
		set["colors"] = *p.Colors
	}
	if p.Images != nil {
		set["images"] = *p.Images
	}
	if p.Stock != nil {
		set["stock"] = *p.Stock
	}
	if p.Published != nil {
		set["published"] = *p.Published
	}
	return set
}
