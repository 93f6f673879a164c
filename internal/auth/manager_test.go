package auth

import (
	"context"
	"errors"
	"testing"

	"cedra_front_end/internal/models"
	"cedra_front_end/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient compte les appels et renvoie ce qu'on lui dit de renvoyer.
type fakeClient struct {
	profileCalls  int
	profileUser   *models.User
	profileErr    error
	exchangeCalls int
	exchangeToken string
	exchangeUser  *models.User
	exchangeErr   error
}

func (f *fakeClient) Profile(ctx context.Context, token string) (*models.User, error) {
	f.profileCalls++
	return f.profileUser, f.profileErr
}

func (f *fakeClient) ExchangeSession(ctx context.Context, sessionID string) (string, *models.User, error) {
	f.exchangeCalls++
	return f.exchangeToken, f.exchangeUser, f.exchangeErr
}

func newManager(store storage.Store, client ProfileClient) *Manager {
	return NewManager(store, client, "https://auth.example.com/login", "https://shop.example.com")
}

// Sans token stocké : Unauthenticated, et surtout aucun appel réseau.
func TestResolve_NoToken(t *testing.T) {
	client := &fakeClient{}
	m := newManager(storage.NewMemoryStore(), client)

	state, user := m.Resolve(context.Background(), "v1")

	assert.Equal(t, Unauthenticated, state)
	assert.Nil(t, user)
	assert.Equal(t, 0, client.profileCalls)
}

// Token stocké + profil qui échoue : Unauthenticated et token supprimé.
func TestResolve_FailingProfileClearsToken(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "session_token:v1", "tok-expiré"))

	client := &fakeClient{profileErr: errors.New("401 unauthorized")}
	m := newManager(store, client)

	state, user := m.Resolve(ctx, "v1")

	assert.Equal(t, Unauthenticated, state)
	assert.Nil(t, user)
	assert.Equal(t, 1, client.profileCalls)

	_, err := store.Get(ctx, "session_token:v1")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestResolve_ValidTokenAuthenticates(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "session_token:v1", "tok-valide"))

	client := &fakeClient{profileUser: &models.User{ID: "u1", Email: "jean@example.com", Name: "Jean"}}
	m := newManager(store, client)

	state, user := m.Resolve(ctx, "v1")

	assert.Equal(t, Authenticated, state)
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)

	// Le token reste en place
	token, err := store.Get(ctx, "session_token:v1")
	require.NoError(t, err)
	assert.Equal(t, "tok-valide", token)
}

func TestLoginURL_TargetsProfilePage(t *testing.T) {
	m := newManager(storage.NewMemoryStore(), &fakeClient{})
	assert.Equal(t,
		"https://auth.example.com/login?redirect=https%3A%2F%2Fshop.example.com%2Fprofile",
		m.LoginURL())
}

func TestHandleCallback_PersistsToken(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	client := &fakeClient{
		exchangeToken: "tok-longue-durée",
		exchangeUser:  &models.User{ID: "u1", Name: "Jean"},
	}
	m := newManager(store, client)

	user, err := m.HandleCallback(ctx, "v1", "sess-abc")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	token, err := store.Get(ctx, "session_token:v1")
	require.NoError(t, err)
	assert.Equal(t, "tok-longue-durée", token)
}

func TestHandleCallback_ExchangeFailureLeavesUnauthenticated(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	client := &fakeClient{exchangeErr: errors.New("session_id invalide")}
	m := newManager(store, client)

	_, err := m.HandleCallback(ctx, "v1", "sess-abc")
	require.Error(t, err)
	assert.Equal(t, 1, client.exchangeCalls)

	_, err = store.Get(ctx, "session_token:v1")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	state, _ := m.Resolve(ctx, "v1")
	assert.Equal(t, Unauthenticated, state)
}

func TestLogout_DeletesTokenWithoutBackendCall(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "session_token:v1", "tok"))

	client := &fakeClient{}
	m := newManager(store, client)

	require.NoError(t, m.Logout(ctx, "v1"))
	_, err := store.Get(ctx, "session_token:v1")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Equal(t, 0, client.profileCalls)
	assert.Equal(t, 0, client.exchangeCalls)
}
