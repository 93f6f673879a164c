package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config regroupe les variables d'environnement du storefront.
type Config struct {
	Port          string
	AppURL        string // origine publique du storefront (cible des redirects)
	BackendURL    string // base du backend REST (ex: https://api.cedra.shop)
	AuthPageURL   string // page de login hébergée externe
	SessionSecret string // secret des cookies visiteur
}

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// FromEnv lit la configuration ; BACKEND_URL et SESSION_SECRET sont requis.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:          os.Getenv("PORT"),
		AppURL:        os.Getenv("APP_URL"),
		BackendURL:    os.Getenv("BACKEND_URL"),
		AuthPageURL:   os.Getenv("AUTH_PAGE_URL"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
	}

	if cfg.BackendURL == "" {
		return nil, fmt.Errorf("BACKEND_URL manquant dans .env")
	}
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET manquant dans .env")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.AppURL == "" {
		cfg.AppURL = "http://localhost:" + cfg.Port
	}
	if cfg.AuthPageURL == "" {
		cfg.AuthPageURL = "https://auth.emergentagent.com"
	}

	return cfg, nil
}
