package handlers

import (
	"net/http"
	"strconv"

	"cedra_front_end/internal/backend"
	"cedra_front_end/internal/models"

	"github.com/gin-gonic/gin"
)

// GetProducts compose l'écran produits. Les changements de filtre rapprochés
// passent par le browser du visiteur : seule la réponse la plus récente est
// appliquée, une réponse en retard est jetée.
func (h *Handler) GetProducts(c *gin.Context) {
	filter := backend.ProductFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}
	if v, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil {
		filter.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil {
		filter.MaxPrice = &v
	}

	browser := h.catalog.For(h.visitorID(c))
	products := browser.Browse(c.Request.Context(), filter)
	if products == nil {
		products = []models.Product{} // jamais null en JSON
	}

	c.JSON(http.StatusOK, gin.H{
		"products":   products,
		"cart_count": h.loadCart(c).Count(),
	})
}

// GetProduct compose la fiche détaillée d'un produit.
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.backend.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	c.JSON(http.StatusOK, product)
}
