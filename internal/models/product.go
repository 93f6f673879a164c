package models

import "time"

// Product tel que renvoyé par le backend — lecture seule côté storefront.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Images      []string  `json:"images"`
	Category    string    `json:"category"`
	Inventory   int       `json:"inventory"`
	Type        string    `json:"type"` // physical, digital, service
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
}

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
