package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/TheayX/WayTrip/internal/config"

	"github.com/redis/go-redis/v9"
)

// Cache es lo que los servicios necesitan de Redis: valores JSON con TTL.
// Los tests usan una implementación en memoria.
type Cache interface {
	// GetJSON lee una key, si existe deserializa el JSON en `dest` y devuelve true.
	GetJSON(ctx context.Context, key string, dest any) (bool, error)

	// SetJSON serializa `value` a JSON y lo guarda con TTL.
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error

	// Delete elimina una key (no es error si no existe).
	Delete(ctx context.Context, key string) error
}

// Redis implementa Cache sobre go-redis.
type Redis struct {
	client *redis.Client
}

func InitRedis(cfg *config.Config) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("[redis] error conectando: %v", err)
	}

	log.Println("[redis] conectado OK")
	return &Redis{client: client}
}

func (c *Redis) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		// no existe la clave
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, b, ttl).Err()
}

func (c *Redis) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

var _ Cache = (*Redis)(nil)
