// Package auth gère la session utilisateur du storefront. Le login passe par
// une page hébergée externe : on redirige le navigateur, la page revient avec
// un session_id qu'on échange auprès du backend contre un token longue durée.
package auth

import (
	"context"
	"log"
	"net/url"

	"cedra_front_end/internal/models"
	"cedra_front_end/internal/storage"
)

// State est l'état de session du visiteur.
type State int

const (
	// Unauthenticated : pas de token, ou token rejeté.
	Unauthenticated State = iota
	// Resolving : un token existe, le profil est en cours de résolution.
	Resolving
	// Authenticated : le backend a reconnu le token.
	Authenticated
)

func (s State) String() string {
	switch s {
	case Resolving:
		return "resolving"
	case Authenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// ProfileClient est la partie du client backend dont le manager a besoin.
type ProfileClient interface {
	Profile(ctx context.Context, token string) (*models.User, error)
	ExchangeSession(ctx context.Context, sessionID string) (string, *models.User, error)
}

type Manager struct {
	sessions    *SessionStore
	client      ProfileClient
	authPageURL string
	appURL      string
}

func NewManager(store storage.Store, client ProfileClient, authPageURL, appURL string) *Manager {
	return &Manager{
		sessions:    NewSessionStore(store),
		client:      client,
		authPageURL: authPageURL,
		appURL:      appURL,
	}
}

// Resolve rejoue la séquence de démarrage : sans token stocké on est
// Unauthenticated sans le moindre appel réseau ; avec un token on tente la
// résolution du profil, et TOUT échec (réseau, token rejeté, réponse
// invalide) supprime le token stocké.
func (m *Manager) Resolve(ctx context.Context, visitorID string) (State, *models.User) {
	token, err := m.sessions.Token(ctx, visitorID)
	if err != nil || token == "" {
		return Unauthenticated, nil
	}

	user, err := m.client.Profile(ctx, token)
	if err != nil {
		log.Printf("⚠️ Résolution du profil échouée, token supprimé: %v", err)
		if delErr := m.sessions.Delete(ctx, visitorID); delErr != nil {
			log.Printf("❌ Suppression du token impossible: %v", delErr)
		}
		return Unauthenticated, nil
	}

	return Authenticated, user
}

// Token renvoie le token stocké du visiteur, storage.ErrNotFound sinon.
func (m *Manager) Token(ctx context.Context, visitorID string) (string, error) {
	return m.sessions.Token(ctx, visitorID)
}

// LoginURL construit l'URL de la page de login hébergée, avec en paramètre
// redirect l'URL de la page profil de l'application.
func (m *Manager) LoginURL() string {
	return m.authPageURL + "?redirect=" + url.QueryEscape(m.appURL+"/profile")
}

// HandleCallback échange le session_id reçu au retour du login contre un
// token longue durée, puis le persiste. En cas d'échec l'utilisateur reste
// non authentifié ; pas de retry.
func (m *Manager) HandleCallback(ctx context.Context, visitorID, sessionID string) (*models.User, error) {
	token, user, err := m.client.ExchangeSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := m.sessions.Save(ctx, visitorID, token); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout supprime le token stocké. Aucun appel backend : le token expirera
// de lui-même côté serveur.
func (m *Manager) Logout(ctx context.Context, visitorID string) error {
	return m.sessions.Delete(ctx, visitorID)
}
