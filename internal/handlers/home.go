package handlers

import (
	"log"
	"net/http"

	"cedra_front_end/internal/backend"
	"cedra_front_end/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// GetHome compose l'écran d'accueil : produits mis en avant + catégories,
// récupérés en parallèle. Un échec dégrade en liste vide, jamais en erreur.
func (h *Handler) GetHome(c *gin.Context) {
	c.JSON(http.StatusOK, h.homeScreen(c))
}

func (h *Handler) homeScreen(c *gin.Context) gin.H {
	var (
		featured   []models.Product
		categories []models.Category
	)

	g, ctx := errgroup.WithContext(c.Request.Context())

	g.Go(func() error {
		products, err := h.backend.Products(ctx, backend.ProductFilter{Featured: true})
		if err != nil {
			log.Printf("⚠️ Produits mis en avant indisponibles: %v", err)
			return nil
		}
		featured = products
		return nil
	})

	g.Go(func() error {
		cats, err := h.backend.Categories(ctx)
		if err != nil {
			log.Printf("⚠️ Catégories indisponibles: %v", err)
			return nil
		}
		categories = cats
		return nil
	})

	_ = g.Wait()

	if featured == nil {
		featured = []models.Product{}
	}
	if categories == nil {
		categories = []models.Category{}
	}

	return gin.H{
		"featured":   featured,
		"categories": categories,
		"cart_count": h.loadCart(c).Count(),
	}
}
