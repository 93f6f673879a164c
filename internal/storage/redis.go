package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// EntryTTL aligne la durée de vie des entrées sur celle d'un panier : 30 jours.
const EntryTTL = 30 * 24 * time.Hour

type RedisStore struct {
	client *redis.Client
}

// NewRedisStore ouvre la connexion Redis à partir de REDIS_HOST / REDIS_PASSWORD.
func NewRedisStore() (*RedisStore, error) {
	redisHost := os.Getenv("REDIS_HOST")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	if redisHost == "" {
		return nil, fmt.Errorf("REDIS_HOST non configuré")
	}

	client := redis.NewClient(&redis.Options{
		Addr:         redisHost,
		Password:     redisPassword,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	// Test de connexion
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("impossible de se connecter à Redis: %v", err)
	}

	log.Println("✅ Redis connecté avec succès")
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	return val, err
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, EntryTTL).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// Incr incrémente un compteur avec fenêtre d'expiration (rate limiting).
func (s *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := s.client.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
