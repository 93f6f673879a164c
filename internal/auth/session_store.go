package auth

import (
	"context"

	"cedra_front_end/internal/storage"
)

// SessionStore range le token de session opaque de chaque visiteur dans le
// stockage persistant (clé session_token:<visiteur>).
type SessionStore struct {
	store storage.Store
}

func NewSessionStore(store storage.Store) *SessionStore {
	return &SessionStore{store: store}
}

func (s *SessionStore) key(visitorID string) string {
	return "session_token:" + visitorID
}

func (s *SessionStore) Token(ctx context.Context, visitorID string) (string, error) {
	return s.store.Get(ctx, s.key(visitorID))
}

func (s *SessionStore) Save(ctx context.Context, visitorID, token string) error {
	return s.store.Set(ctx, s.key(visitorID), token)
}

func (s *SessionStore) Delete(ctx context.Context, visitorID string) error {
	return s.store.Delete(ctx, s.key(visitorID))
}
