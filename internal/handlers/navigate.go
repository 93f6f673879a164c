package handlers

import (
	"net/http"

	"cedra_front_end/internal/backend"
	"cedra_front_end/internal/models"
	"cedra_front_end/internal/views"

	"github.com/gin-gonic/gin"
)

// Navigate change la vue active du visiteur. Toute valeur hors du jeu connu
// retombe sur home.
func (h *Handler) Navigate(c *gin.Context) {
	var input struct {
		View string `json:"view" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	view, err := h.router.NavigateTo(c.Request.Context(), h.visitorID(c), input.View)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde navigation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"view": view})
}

// CurrentScreen compose exactement un écran : celui de la vue active.
func (h *Handler) CurrentScreen(c *gin.Context) {
	view := h.router.Active(c.Request.Context(), h.visitorID(c))

	var screen gin.H
	switch view {
	case views.Products:
		browser := h.catalog.For(h.visitorID(c))
		products := browser.Browse(c.Request.Context(), backend.ProductFilter{})
		if products == nil {
			products = []models.Product{}
		}
		screen = gin.H{"products": products, "cart_count": h.loadCart(c).Count()}
	case views.Cart:
		ct := h.loadCart(c)
		screen = cartPayload(ct.Items(), ct.Count(), ct.Total())
	case views.Orders:
		screen = h.ordersScreen(c)
	case views.Profile:
		screen = h.profileScreen(c)
	default:
		screen = h.homeScreen(c)
	}

	c.JSON(http.StatusOK, gin.H{
		"view":   view,
		"screen": screen,
	})
}
