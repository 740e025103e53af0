// Package catalog holds the bakery's product list. Products are static;
// only their displayed prices move with the exchange rate.
package catalog

// Product is one catalog entry. BaseUSD is the stable reference price;
// bolívar prices are derived from it at the current rate.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	BaseUSD     float64 `json:"base_usd"`
	Image       string  `json:"image"`
}

// Categories available for filtering, in menu order.
var Categories = []string{"todos", "tradicionales", "gourmet", "postres", "bebidas"}

var products = []Product{
	{
		ID:          1,
		Name:        "Pan Canilla Tradicional",
		Description: "Crujiente por fuera, suave por dentro. Horneado varias veces al día.",
		Category:    "tradicionales",
		BaseUSD:     0.20,
		Image:       "🥖",
	},
	{
		ID:          2,
		Name:        "Pan de Jamón Navideño",
		Description: "Relleno de jamón, tocineta, aceitunas y pasas. Disponible en temporada.",
		Category:    "gourmet",
		BaseUSD:     5.50,
		Image:       "🎄",
	},
	{
		ID:          3,
		Name:        "Croissant de Mantequilla",
		Description: "Hojaldre de mantequilla con 24 horas de fermentación.",
		Category:    "gourmet",
		BaseUSD:     0.25,
		Image:       "🥐",
	},
	{
		ID:          4,
		Name:        "Torta Tres Leches",
		Description: "Bizcocho bañado en tres leches, para 8 porciones.",
		Category:    "postres",
		BaseUSD:     8.00,
		Image:       "🍰",
	},
	{
		ID:          5,
		Name:        "Quesillo Casero",
		Description: "Receta familiar con caramelo oscuro.",
		Category:    "postres",
		BaseUSD:     4.00,
		Image:       "🍮",
	},
	{
		ID:          6,
		Name:        "Café Tostado Venezolano",
		Description: "Grano de los Andes, tostado medio, empaque de 250g.",
		Category:    "bebidas",
		BaseUSD:     3.50,
		Image:       "☕",
	},
	{
		ID:          7,
		Name:        "Cachitos de Jamón",
		Description: "El clásico del desayuno, recién salido del horno.",
		Category:    "tradicionales",
		BaseUSD:     0.35,
		Image:       "🌭",
	},
	{
		ID:          8,
		Name:        "Golfeados Tradicionales",
		Description: "Con papelón, queso de mano y anís.",
		Category:    "tradicionales",
		BaseUSD:     0.40,
		Image:       "🍯",
	},
}

// Products returns the full catalog in menu order.
func Products() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// ByCategory filters the catalog; "todos" (or empty) returns everything.
func ByCategory(category string) []Product {
	if category == "" || category == "todos" {
		return Products()
	}
	var out []Product
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// ByID looks up a product; ok is false for unknown IDs.
func ByID(id int) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
