package backend

import (
	"errors"
	"fmt"

	"cedra_front_end/internal/models"
)

// ErrUnauthorized : token de session absent, invalide ou expiré côté backend.
var ErrUnauthorized = errors.New("backend: session invalide ou expirée")

// APIError est une réponse d'erreur du backend (autre que 401).
type APIError struct {
	StatusCode int
	Detail     string `json:"detail"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: erreur %d: %s", e.StatusCode, e.Detail)
}

// ProductFilter reflète les paramètres de GET /api/products.
type ProductFilter struct {
	Featured bool
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// sessionResponse est la réponse de POST /api/auth/session.
type sessionResponse struct {
	SessionToken string      `json:"session_token"`
	User         models.User `json:"user"`
}
