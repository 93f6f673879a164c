package handlers

import (
	"net/http"

	"cedra_front_end/internal/models"

	"github.com/gin-gonic/gin"
)

func cartPayload(items []models.CartItem, count int, total float64) gin.H {
	if items == nil {
		items = []models.CartItem{}
	}
	return gin.H{
		"items": items,
		"count": count,
		"total": total,
	}
}

// GetCart compose l'écran panier.
func (h *Handler) GetCart(c *gin.Context) {
	ct := h.loadCart(c)
	c.JSON(http.StatusOK, cartPayload(ct.Items(), ct.Count(), ct.Total()))
}

// AddToCart ajoute un produit au panier. Le produit est relu depuis le
// backend pour capturer son prix au moment de l'ajout.
func (h *Handler) AddToCart(c *gin.Context) {
	var input struct {
		ProductID string `json:"product_id" binding:"required"`
		Quantity  int    `json:"quantity"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if input.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	product, err := h.backend.Product(c.Request.Context(), input.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	ct := h.loadCart(c)
	if err := ct.Add(c.Request.Context(), *product, input.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, cartPayload(ct.Items(), ct.Count(), ct.Total()))
}

// UpdateCartItem fixe la quantité exacte d'un item ; quantité ≤ 0 = suppression.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	var input struct {
		Quantity int `json:"quantity"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ct := h.loadCart(c)
	if err := ct.UpdateQuantity(c.Request.Context(), c.Param("productId"), input.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, cartPayload(ct.Items(), ct.Count(), ct.Total()))
}

// RemoveFromCart supprime un produit du panier.
func (h *Handler) RemoveFromCart(c *gin.Context) {
	ct := h.loadCart(c)
	if err := ct.Remove(c.Request.Context(), c.Param("productId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, cartPayload(ct.Items(), ct.Count(), ct.Total()))
}

// ClearCart vide complètement le panier.
func (h *Handler) ClearCart(c *gin.Context) {
	ct := h.loadCart(c)
	if err := ct.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du vidage du panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Panier vidé avec succès"})
}
