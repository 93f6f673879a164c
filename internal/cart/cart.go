// Package cart implémente le panier côté client : une liste ordonnée de
// snapshots produits, recopiée dans le stockage persistant à chaque mutation.
package cart

import (
	"context"
	"encoding/json"
	"log"

	"cedra_front_end/internal/models"
	"cedra_front_end/internal/storage"
)

type Cart struct {
	store storage.Store
	key   string
	items []models.CartItem
	count int
}

// Load hydrate le panier du visiteur depuis le stockage. Clé absente ou JSON
// corrompu → panier vide, jamais d'erreur fatale.
func Load(ctx context.Context, store storage.Store, visitorID string) *Cart {
	c := &Cart{
		store: store,
		key:   "cart:" + visitorID,
	}

	data, err := store.Get(ctx, c.key)
	if err != nil || data == "" {
		c.recount()
		return c
	}

	if err := json.Unmarshal([]byte(data), &c.items); err != nil {
		log.Printf("⚠️ Panier corrompu pour %s, on repart à vide: %v", visitorID, err)
		c.items = nil
	}
	c.recount()
	return c
}

// Add ajoute un produit au panier. Si le produit y figure déjà, la quantité
// est incrémentée ; sinon l'item est ajouté en fin de liste. Le prix, le nom
// et la première image sont capturés au moment de l'ajout.
func (c *Cart) Add(ctx context.Context, product models.Product, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.items {
		if c.items[i].ProductID == product.ID {
			c.items[i].Quantity += quantity
			c.recount()
			return c.persist(ctx)
		}
	}

	imageURL := ""
	if len(product.Images) > 0 {
		imageURL = product.Images[0]
	}

	c.items = append(c.items, models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
		ImageURL:  imageURL,
	})
	c.recount()
	return c.persist(ctx)
}

// Remove supprime l'item correspondant ; aucun effet si le produit est absent.
func (c *Cart) Remove(ctx context.Context, productID string) error {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.recount()
	return c.persist(ctx)
}

// UpdateQuantity fixe la quantité exacte d'un item. Quantité ≤ 0 = suppression.
func (c *Cart) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return c.Remove(ctx, productID)
	}

	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			break
		}
	}
	c.recount()
	return c.persist(ctx)
}

// Clear vide le panier et supprime complètement la clé du stockage.
func (c *Cart) Clear(ctx context.Context) error {
	c.items = nil
	c.recount()
	return c.store.Delete(ctx, c.key)
}

// Items renvoie une copie de la liste, dans l'ordre d'insertion.
func (c *Cart) Items() []models.CartItem {
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Count renvoie le nombre total d'articles (somme des quantités).
func (c *Cart) Count() int {
	return c.count
}

// Total recalcule à chaque appel la somme prix × quantité sur les snapshots.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (c *Cart) recount() {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	c.count = count
}

func (c *Cart) persist(ctx context.Context) error {
	data, err := json.Marshal(c.items)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, c.key, string(data))
}
