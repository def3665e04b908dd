package handler

import "github.com/modeboutique/storefront/internal/core/domain"

func toArticleInput(r articleRequest) domain.ArticleInput {
	return domain.ArticleInput{
		Name:        r.Name,
		Description: r.Description,
		PriceFC:     r.PriceFC,
		PriceUSD:    r.PriceUSD,
		Category:    r.Category,
		Sizes:       r.Sizes,
		Colors:      r.Colors,
		Images:      r.Images,
		Stock:       r.Stock,
		Published:   r.Published,
	}
}

func toArticlePatch(r articlePatchRequest) domain.ArticlePatch {
	return domain.ArticlePatch{
		Name:        r.Name,
		Description: r.Description,
		PriceFC:     r.PriceFC,
		PriceUSD:    r.PriceUSD,
		Category:    r.Category,
		Sizes:       r.Sizes,
		Colors:      r.Colors,
		Images:      r.Images,
		Stock:       r.Stock,
		Published:   r.Published,
	}
}

// toClientResponse drops the stored password.
func toClientResponse(c *domain.Client) clientResponse {
	return clientResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}

func toClientResponses(in []domain.Client) []clientResponse {
	out := make([]clientResponse, len(in))
	for i := range in {
		out[i] = toClientResponse(&in[i])
	}
	return out
}
