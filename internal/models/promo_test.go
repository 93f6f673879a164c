package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromoCode_Discount(t *testing.T) {
	ten := 10.0
	fifty := 50.0

	// Pourcentage simple
	p := PromoCode{DiscountPercentage: 10}
	assert.InDelta(t, 4.995, p.Discount(49.95), 1e-9)

	// Montant fixe prioritaire sur le pourcentage
	p = PromoCode{DiscountPercentage: 10, DiscountAmount: &ten}
	assert.InDelta(t, 10, p.Discount(49.95), 1e-9)

	// La remise ne dépasse jamais le sous-total
	p = PromoCode{DiscountAmount: &fifty}
	assert.InDelta(t, 20, p.Discount(20), 1e-9)

	// Minimum de commande non atteint : pas de remise
	p = PromoCode{DiscountPercentage: 10, MinOrderAmount: &fifty}
	assert.InDelta(t, 0, p.Discount(49.95), 1e-9)
}
