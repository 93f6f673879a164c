// Package views sélectionne l'écran actif du storefront. Un seul écran à la
// fois, pas d'historique, pas de synchronisation d'URL.
package views

import (
	"context"

	"cedra_front_end/internal/storage"
)

type View string

const (
	Home     View = "home"
	Products View = "products"
	Cart     View = "cart"
	Orders   View = "orders"
	Profile  View = "profile"
)

// Normalize rabat toute valeur inconnue sur Home.
func Normalize(v string) View {
	switch View(v) {
	case Home, Products, Cart, Orders, Profile:
		return View(v)
	default:
		return Home
	}
}

// Router mémorise la vue active de chaque visiteur dans le stockage.
type Router struct {
	store storage.Store
}

func NewRouter(store storage.Store) *Router {
	return &Router{store: store}
}

func (r *Router) key(visitorID string) string {
	return "view:" + visitorID
}

// NavigateTo fixe la vue active (normalisée) du visiteur.
func (r *Router) NavigateTo(ctx context.Context, visitorID, view string) (View, error) {
	v := Normalize(view)
	if err := r.store.Set(ctx, r.key(visitorID), string(v)); err != nil {
		return v, err
	}
	return v, nil
}

// Active renvoie la vue courante, Home par défaut.
func (r *Router) Active(ctx context.Context, visitorID string) View {
	val, err := r.store.Get(ctx, r.key(visitorID))
	if err != nil {
		return Home
	}
	return Normalize(val)
}
