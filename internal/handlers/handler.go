// Package handlers expose les écrans du storefront en JSON. Chaque écran
// compose le panier, la session et le client backend ; la présentation
// (HTML/CSS) est rendue ailleurs.
package handlers

import (
	"cedra_front_end/internal/auth"
	"cedra_front_end/internal/backend"
	"cedra_front_end/internal/cart"
	"cedra_front_end/internal/catalog"
	"cedra_front_end/internal/middleware"
	"cedra_front_end/internal/storage"
	"cedra_front_end/internal/views"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store   storage.Store
	backend *backend.Client
	auth    *auth.Manager
	router  *views.Router
	catalog *catalog.Registry
	appURL  string
}

func New(store storage.Store, client *backend.Client, manager *auth.Manager, appURL string) *Handler {
	return &Handler{
		store:   store,
		backend: client,
		auth:    manager,
		router:  views.NewRouter(store),
		catalog: catalog.NewRegistry(client),
		appURL:  appURL,
	}
}

func (h *Handler) visitorID(c *gin.Context) string {
	return c.GetString(middleware.VisitorKey)
}

// loadCart hydrate le panier du visiteur courant.
func (h *Handler) loadCart(c *gin.Context) *cart.Cart {
	return cart.Load(c.Request.Context(), h.store, h.visitorID(c))
}
