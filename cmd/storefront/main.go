package main

import (
	"log"

	"cedra_front_end/internal/auth"
	"cedra_front_end/internal/backend"
	"cedra_front_end/internal/config"
	"cedra_front_end/internal/handlers"
	"cedra_front_end/internal/middleware"
	"cedra_front_end/internal/routes"
	"cedra_front_end/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal("❌ Configuration invalide : ", err)
	}

	store, counter := initStorage()

	client := backend.NewClient(backend.Config{BaseURL: cfg.BackendURL})
	log.Println("✅ Client backend initialisé sur", cfg.BackendURL)

	manager := auth.NewManager(store, client, cfg.AuthPageURL, cfg.AppURL)
	h := handlers.New(store, client, manager, cfg.AppURL)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AppURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(middleware.Visitor(middleware.NewCookieStore(cfg.SessionSecret)))

	routes.RegisterRoutes(r, h, counter)

	log.Println("🚀 Storefront Cedra lancé sur le port", cfg.Port)
	r.Run(":" + cfg.Port)
}

// initStorage ouvre Redis, ou retombe sur le stockage mémoire en dev quand
// REDIS_HOST n'est pas configuré (rien ne survit alors au redémarrage).
func initStorage() (storage.Store, middleware.Counter) {
	redisStore, err := storage.NewRedisStore()
	if err != nil {
		log.Println("⚠️ Redis indisponible, stockage mémoire utilisé :", err)
		mem := storage.NewMemoryStore()
		return mem, mem
	}
	return redisStore, redisStore
}
