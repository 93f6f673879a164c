package models

import "time"

type PromoCode struct {
	ID                 string     `json:"id"`
	Code               string     `json:"code"`
	DiscountPercentage float64    `json:"discount_percentage"`
	DiscountAmount     *float64   `json:"discount_amount,omitempty"`
	MinOrderAmount     *float64   `json:"min_order_amount,omitempty"`
	Active             bool       `json:"active"`
	ExpiresAt          *time.Time `json:"expires_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

// Discount calcule la remise applicable à un sous-total donné.
// Un montant fixe prime sur le pourcentage ; remise nulle si le
// minimum de commande n'est pas atteint.
func (p PromoCode) Discount(subtotal float64) float64 {
	if p.MinOrderAmount != nil && subtotal < *p.MinOrderAmount {
		return 0
	}
	if p.DiscountAmount != nil && *p.DiscountAmount > 0 {
		if *p.DiscountAmount > subtotal {
			return subtotal
		}
		return *p.DiscountAmount
	}
	return subtotal * p.DiscountPercentage / 100
}
