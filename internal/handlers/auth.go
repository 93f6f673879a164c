package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Login redirige tout le navigateur vers la page de login hébergée, avec
// l'URL de la page profil en cible de retour. Aucun état local ne change :
// le navigateur reviendra avec un session_id sur le callback.
func (h *Handler) Login(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, h.auth.LoginURL())
}

// AuthCallback reçoit le session_id au retour de la page hébergée (la page
// profil extrait le fragment #session_id=... et le repasse ici), l'échange
// contre un token longue durée puis renvoie vers la racine de l'application.
func (h *Handler) AuthCallback(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id manquant"})
		return
	}

	if _, err := h.auth.HandleCallback(c.Request.Context(), h.visitorID(c), sessionID); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Échec de la connexion, réessayez"})
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, "/")
}

// Logout supprime le token stocké, sans appel backend.
func (h *Handler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), h.visitorID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de la déconnexion"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Déconnecté"})
}
