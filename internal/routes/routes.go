package routes

import (
	"cedra_front_end/internal/handlers"
	"cedra_front_end/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, counter middleware.Counter) {
	api := r.Group("/api", middleware.APIRateLimit(counter))

	// Écrans
	api.GET("/screens/current", h.CurrentScreen)
	api.GET("/screens/home", h.GetHome)
	api.GET("/screens/products", h.GetProducts)
	api.GET("/screens/orders", h.GetOrders)
	api.GET("/screens/profile", h.GetProfile)
	api.POST("/navigate", h.Navigate)

	// Catalogue
	api.GET("/products/:id", h.GetProduct)

	// Panier
	api.GET("/cart", h.GetCart)
	api.POST("/cart", h.AddToCart)
	api.PUT("/cart/:productId", h.UpdateCartItem)
	api.DELETE("/cart/:productId", h.RemoveFromCart)
	api.DELETE("/cart", h.ClearCart)

	// Commandes
	api.POST("/checkout", h.Checkout)
	api.GET("/orders/:id", h.GetOrder)

	// Session
	api.GET("/auth/login", h.Login)
	api.GET("/auth/callback", h.AuthCallback)
	api.POST("/auth/logout", h.Logout)
}
