package handlers

import (
	"log"
	"net/http"

	"cedra_front_end/internal/auth"
	"cedra_front_end/internal/models"

	"github.com/gin-gonic/gin"
)

// loginPlaceholder est l'écran "veuillez vous connecter" : aucun appel
// backend n'est fait tant que le visiteur n'est pas authentifié.
func loginPlaceholder() gin.H {
	return gin.H{
		"authenticated": false,
		"message":       "Veuillez vous connecter pour voir cette page",
	}
}

// GetOrders compose l'écran historique de commandes.
func (h *Handler) GetOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.ordersScreen(c))
}

func (h *Handler) ordersScreen(c *gin.Context) gin.H {
	ctx := c.Request.Context()
	visitorID := h.visitorID(c)

	state, _ := h.auth.Resolve(ctx, visitorID)
	if state != auth.Authenticated {
		return loginPlaceholder()
	}

	token, err := h.auth.Token(ctx, visitorID)
	if err != nil {
		return loginPlaceholder()
	}

	orders, err := h.backend.Orders(ctx, token)
	if err != nil {
		log.Printf("⚠️ Historique de commandes indisponible: %v", err)
		orders = []models.Order{}
	}
	if orders == nil {
		orders = []models.Order{}
	}

	return gin.H{
		"authenticated": true,
		"orders":        orders,
	}
}

// GetOrder compose le détail d'une commande.
func (h *Handler) GetOrder(c *gin.Context) {
	ctx := c.Request.Context()
	visitorID := h.visitorID(c)

	state, _ := h.auth.Resolve(ctx, visitorID)
	if state != auth.Authenticated {
		c.JSON(http.StatusUnauthorized, loginPlaceholder())
		return
	}

	token, err := h.auth.Token(ctx, visitorID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, loginPlaceholder())
		return
	}

	order, err := h.backend.Order(ctx, token, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	c.JSON(http.StatusOK, order)
}
