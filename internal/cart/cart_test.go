package cart

import (
	"context"
	"testing"

	"cedra_front_end/internal/models"
	"cedra_front_end/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string, price float64) models.Product {
	return models.Product{
		ID:     id,
		Name:   "Produit " + id,
		Price:  price,
		Images: []string{"https://img.example/" + id + ".jpg"},
	}
}

// L'invariant central : après chaque mutation, Count == somme des quantités
// et jamais deux items pour le même produit.
func checkInvariant(t *testing.T, c *Cart) {
	t.Helper()
	sum := 0
	seen := map[string]bool{}
	for _, item := range c.Items() {
		assert.False(t, seen[item.ProductID], "produit %s en double", item.ProductID)
		seen[item.ProductID] = true
		assert.Greater(t, item.Quantity, 0)
		sum += item.Quantity
	}
	assert.Equal(t, sum, c.Count())
}

func TestAdd_MergesSameProduct(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	c := Load(ctx, store, "v1")

	require.NoError(t, c.Add(ctx, product("p1", 9.99), 2))
	checkInvariant(t, c)
	require.NoError(t, c.Add(ctx, product("p1", 9.99), 3))
	checkInvariant(t, c)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 5, c.Count())
	assert.InDelta(t, 49.95, c.Total(), 1e-9)
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	c := Load(ctx, storage.NewMemoryStore(), "v1")

	require.NoError(t, c.Add(ctx, product("p1", 1), 1))
	require.NoError(t, c.Add(ctx, product("p2", 2), 1))
	require.NoError(t, c.Add(ctx, product("p3", 3), 1))
	require.NoError(t, c.UpdateQuantity(ctx, "p2", 7))
	checkInvariant(t, c)

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, "p2", items[1].ProductID)
	assert.Equal(t, "p3", items[2].ProductID)
	assert.Equal(t, 7, items[1].Quantity)
}

func TestUpdateQuantity_ZeroOrNegativeRemoves(t *testing.T) {
	ctx := context.Background()

	for _, qty := range []int{0, -1} {
		c := Load(ctx, storage.NewMemoryStore(), "v1")
		require.NoError(t, c.Add(ctx, product("p1", 5), 2))

		require.NoError(t, c.UpdateQuantity(ctx, "p1", qty))
		checkInvariant(t, c)
		assert.Empty(t, c.Items())
		assert.Equal(t, 0, c.Count())
	}
}

func TestRemove_AbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	c := Load(ctx, storage.NewMemoryStore(), "v1")
	require.NoError(t, c.Add(ctx, product("p1", 5), 2))

	require.NoError(t, c.Remove(ctx, "inconnu"))
	checkInvariant(t, c)
	assert.Len(t, c.Items(), 1)
	assert.Equal(t, 2, c.Count())
}

// Le total utilise le prix capturé à l'ajout, pas le prix courant du produit.
func TestTotal_UsesSnapshotPrice(t *testing.T) {
	ctx := context.Background()
	c := Load(ctx, storage.NewMemoryStore(), "v1")

	p := product("p1", 9.99)
	require.NoError(t, c.Add(ctx, p, 2))

	// Le backend renverrait maintenant un autre prix : sans effet sur le panier
	p.Price = 19.99
	assert.InDelta(t, 19.98, c.Total(), 1e-9)
}

// Simulation de redémarrage : le panier rechargé reproduit la même séquence.
func TestLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	c := Load(ctx, store, "v1")
	require.NoError(t, c.Add(ctx, product("p1", 9.99), 2))
	require.NoError(t, c.Add(ctx, product("p2", 4.50), 1))
	require.NoError(t, c.UpdateQuantity(ctx, "p1", 3))

	reloaded := Load(ctx, store, "v1")
	assert.Equal(t, c.Items(), reloaded.Items())
	assert.Equal(t, c.Count(), reloaded.Count())
	checkInvariant(t, reloaded)
}

func TestLoad_IsolatedPerVisitor(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	c1 := Load(ctx, store, "v1")
	require.NoError(t, c1.Add(ctx, product("p1", 1), 1))

	c2 := Load(ctx, store, "v2")
	assert.Empty(t, c2.Items())
}

func TestLoad_CorruptDataFailsSoftToEmpty(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "cart:v1", "{pas du json"))

	c := Load(ctx, store, "v1")
	assert.Empty(t, c.Items())
	assert.Equal(t, 0, c.Count())
	checkInvariant(t, c)
}

func TestClear_RemovesPersistedKey(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	c := Load(ctx, store, "v1")
	require.NoError(t, c.Add(ctx, product("p1", 9.99), 2))
	require.NoError(t, c.Add(ctx, product("p2", 4.50), 1))

	require.NoError(t, c.Clear(ctx))
	assert.Equal(t, 0, c.Count())
	assert.Empty(t, c.Items())

	_, err := store.Get(ctx, "cart:v1")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
