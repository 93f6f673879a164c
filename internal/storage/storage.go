// Package storage fournit le stockage clé/valeur persistant du storefront.
// Il joue le rôle du localStorage navigateur : panier, token de session et
// vue active y sont rangés par visiteur.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound est renvoyé quand la clé n'existe pas (ou a expiré).
var ErrNotFound = errors.New("storage: clé introuvable")

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
