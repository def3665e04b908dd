package domain

import "time"

// SampleArticles returns the demonstration catalog used to seed an empty
// local store. All timestamps are set to now.
func SampleArticles(now time.Time) []Article {
	mk := func(id, name, desc string, fc, usd float64, cat string, sizes, colors []string, img string, stock int) Article {
		return Article{
			ID:          id,
			Name:        name,
			Description: desc,
			PriceFC:     fc,
			PriceUSD:    usd,
			Category:    cat,
			Sizes:       sizes,
			Colors:      colors,
			Images:      []string{img},
			Stock:       stock,
			Published:   true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}
	return []Article{
		mk("1", "Robe Élégante Soirée",
			"Magnifique robe de soirée en tissu satin, parfaite pour les occasions spéciales. Coupe ajustée avec finitions dorées.",
			45000, 25, "Robes", []string{"S", "M", "L", "XL"}, []string{"Noir", "Rouge", "Bleu Marine"},
			"https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=400", 15),
		mk("2", "Costume Homme Premium",
			"Costume deux pièces en laine mélangée. Coupe moderne et confortable pour toutes les occasions.",
			85000, 47, "Costumes", []string{"M", "L", "XL", "XXL"}, []string{"Noir", "Gris", "Bleu"},
			"https://images.unsplash.com/photo-1594938298603-c8148c4dae35?w=400", 10),
		mk("3", "T-Shirt Urban Style",
			"T-shirt en coton bio avec imprimé tendance. Confort absolu au quotidien.",
			15000, 8, "T-Shirts", []string{"S", "M", "L", "XL"}, []string{"Blanc", "Noir", "Gris"},
			"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400", 50),
		mk("4", "Jean Slim Fit",
			"Jean stretch slim fit, denim premium. Parfait pour un look décontracté chic.",
			35000, 19, "Jeans", []string{"28", "30", "32", "34", "36"}, []string{"Bleu", "Noir", "Gris"},
			"https://images.unsplash.com/photo-1542272604-787c3835535d?w=400", 30),
		mk("5", "Veste en Cuir",
			"Veste en simili-cuir de haute qualité. Style biker intemporel.",
			65000, 36, "Vestes", []string{"S", "M", "L", "XL"}, []string{"Noir", "Marron"},
			"https://images.unsplash.com/photo-1551028719-00167b16eac5?w=400", 8),
		mk("6", "Robe Africaine Wax",
			"Robe traditionnelle en tissu wax coloré. Design unique fait main.",
			55000, 30, "Robes", []string{"S", "M", "L", "XL"}, []string{"Multicolore", "Jaune/Bleu", "Rouge/Vert"},
			"https://images.unsplash.com/photo-1590735213920-68192a487bc2?w=400", 12),
	}
}
