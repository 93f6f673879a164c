package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	// VisitorCookie porte l'identité anonyme du navigateur.
	VisitorCookie = "cedra_visitor"
	// VisitorKey est la clé du contexte Gin où l'id du visiteur est posé.
	VisitorKey = "visitor_id"
)

// NewCookieStore construit le store de cookies signés pour l'identité visiteur.
func NewCookieStore(secret string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(86400 * 30)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// Visitor attribue un id stable à chaque navigateur via un cookie signé.
// Cet id sert de namespace dans le stockage persistant (panier, token, vue).
func Visitor(store *sessions.CookieStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := store.Get(c.Request, VisitorCookie)
		if err != nil {
			// Cookie illisible (secret changé ?) : on repart sur une session neuve
			log.Printf("⚠️ Cookie visiteur illisible, nouvelle session: %v", err)
			session, _ = store.New(c.Request, VisitorCookie)
		}

		visitorID, ok := session.Values[VisitorKey].(string)
		if !ok || visitorID == "" {
			visitorID = uuid.NewString()
			session.Values[VisitorKey] = visitorID
			if err := session.Save(c.Request, c.Writer); err != nil {
				log.Printf("❌ Sauvegarde du cookie visiteur impossible: %v", err)
			}
		}

		c.Set(VisitorKey, visitorID)
		c.Next()
	}
}
