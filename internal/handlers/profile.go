package handlers

import (
	"net/http"

	"cedra_front_end/internal/auth"

	"github.com/gin-gonic/gin"
)

// GetProfile compose l'écran profil. La résolution du profil rejoue la
// séquence de démarrage : tout échec supprime le token stocké.
func (h *Handler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.profileScreen(c))
}

func (h *Handler) profileScreen(c *gin.Context) gin.H {
	state, user := h.auth.Resolve(c.Request.Context(), h.visitorID(c))
	if state != auth.Authenticated {
		return loginPlaceholder()
	}

	return gin.H{
		"authenticated": true,
		"user":          user,
	}
}
