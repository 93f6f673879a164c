package handlers

import (
	"log"
	"net/http"

	"cedra_front_end/internal/auth"
	"cedra_front_end/internal/models"
	"cedra_front_end/internal/utils"

	"github.com/gin-gonic/gin"
)

// Checkout soumet la commande au backend. Bloqué si le visiteur n'est pas
// authentifié ; le total est la somme des snapshots du panier, moins la
// remise d'un éventuel code promo validé par le backend.
func (h *Handler) Checkout(c *gin.Context) {
	ctx := c.Request.Context()
	visitorID := h.visitorID(c)

	state, _ := h.auth.Resolve(ctx, visitorID)
	if state != auth.Authenticated {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Veuillez vous connecter pour passer commande"})
		return
	}

	var input struct {
		PaymentMethod string `json:"payment_method" binding:"required"`
		PromoCode     string `json:"promo_code"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ct := h.loadCart(c)
	if ct.Count() == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le panier est vide"})
		return
	}

	total := ct.Total()
	if input.PromoCode != "" {
		promo, err := h.backend.ValidatePromoCode(ctx, input.PromoCode)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Code promo invalide ou expiré"})
			return
		}
		total -= promo.Discount(total)
	}

	items := make([]models.OrderItem, 0, len(ct.Items()))
	for _, item := range ct.Items() {
		items = append(items, models.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.Name,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	token, err := h.auth.Token(ctx, visitorID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Veuillez vous connecter pour passer commande"})
		return
	}

	order, err := h.backend.CreateOrder(ctx, token, models.OrderCreate{
		Items:         items,
		Total:         total,
		PaymentMethod: input.PaymentMethod,
	})
	if err != nil {
		log.Printf("❌ Création de commande échouée: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "La commande n'a pas pu être passée, réessayez"})
		return
	}

	// Commande acceptée : le panier est vidé, clé comprise
	if err := ct.Clear(ctx); err != nil {
		log.Printf("⚠️ Vidage du panier après commande impossible: %v", err)
	}

	qr, err := utils.GenerateOrderQR(h.appURL, order.ID)
	if err != nil {
		log.Printf("⚠️ QR de confirmation non généré: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"order": order,
		"qr":    qr,
	})
}
