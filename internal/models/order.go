package models

import "time"

// Statuts renvoyés par le backend pour une commande.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type Order struct {
	ID            string      `json:"id"`
	UserID        string      `json:"user_id"`
	Items         []OrderItem `json:"items"`
	Total         float64     `json:"total"`
	Status        string      `json:"status"`
	PaymentMethod string      `json:"payment_method"`
	PaymentStatus string      `json:"payment_status"`
	CreatedAt     time.Time   `json:"created_at"`
}

// OrderCreate est le corps envoyé à POST /api/orders.
type OrderCreate struct {
	Items         []OrderItem `json:"items"`
	Total         float64     `json:"total"`
	PaymentMethod string      `json:"payment_method"`
}
