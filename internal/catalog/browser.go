// Package catalog tient l'état de l'écran produits par visiteur. Deux
// changements de filtre rapprochés peuvent se résoudre dans le désordre ;
// chaque requête reçoit un id monotone et seule la réponse de l'id le plus
// récent est appliquée, une réponse périmée est jetée.
package catalog

import (
	"context"
	"log"
	"sync"

	"cedra_front_end/internal/backend"
	"cedra_front_end/internal/models"
)

type ProductFetcher interface {
	Products(ctx context.Context, filter backend.ProductFilter) ([]models.Product, error)
}

type Browser struct {
	fetcher ProductFetcher

	mu      sync.Mutex
	seq     uint64
	applied uint64
	current []models.Product
}

func NewBrowser(fetcher ProductFetcher) *Browser {
	return &Browser{fetcher: fetcher}
}

// Browse lance la récupération des produits pour le filtre donné et renvoie
// le dernier jeu de résultats applicable. Un échec de la requête la plus
// récente dégrade silencieusement en liste vide.
func (b *Browser) Browse(ctx context.Context, filter backend.ProductFilter) []models.Product {
	b.mu.Lock()
	b.seq++
	id := b.seq
	b.mu.Unlock()

	products, err := b.fetcher.Products(ctx, filter)

	b.mu.Lock()
	defer b.mu.Unlock()

	if id <= b.applied {
		// Une requête plus récente a déjà été appliquée.
		return b.snapshot()
	}
	b.applied = id

	if err != nil {
		log.Printf("⚠️ Récupération produits échouée: %v", err)
		b.current = nil
		return nil
	}
	b.current = products
	return b.snapshot()
}

// Current renvoie le dernier jeu de résultats appliqué, sans appel réseau.
func (b *Browser) Current() []models.Product {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshot()
}

func (b *Browser) snapshot() []models.Product {
	out := make([]models.Product, len(b.current))
	copy(out, b.current)
	return out
}

// Registry distribue un Browser par visiteur.
type Registry struct {
	fetcher ProductFetcher

	mu       sync.Mutex
	browsers map[string]*Browser
}

func NewRegistry(fetcher ProductFetcher) *Registry {
	return &Registry{
		fetcher:  fetcher,
		browsers: make(map[string]*Browser),
	}
}

func (r *Registry) For(visitorID string) *Browser {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.browsers[visitorID]
	if !ok {
		b = NewBrowser(r.fetcher)
		r.browsers[visitorID] = b
	}
	return b
}
