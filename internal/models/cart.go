package models

// CartItem est un snapshot produit pris au moment de l'ajout au panier.
// Le prix affiché et facturé est celui capturé ici, pas le prix courant.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"image_url,omitempty"`
}
