package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// APIMaxRequests par minute et par visiteur pour les endpoints généraux
	APIMaxRequests = 100
	APICooldown    = 1 * time.Minute
)

// Counter est un compteur à fenêtre glissante (Redis en prod).
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// APIRateLimit limite le nombre de requêtes par visiteur.
func APIRateLimit(counter Counter) gin.HandlerFunc {
	return func(c *gin.Context) {
		visitorID := c.GetString(VisitorKey)
		if visitorID == "" {
			c.Next()
			return
		}

		key := "rate:" + visitorID
		count, err := counter.Incr(c.Request.Context(), key, APICooldown)
		if err != nil {
			// Compteur indisponible : on laisse passer
			log.Printf("⚠️ Rate limit indisponible: %v", err)
			c.Next()
			return
		}

		if count > APIMaxRequests {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Trop de requêtes, réessayez plus tard"})
			c.Abort()
			return
		}

		c.Next()
	}
}
