package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis é o driver KV sobre Redis, para quem prefere manter o estado
// da loja em um servidor de cache já existente
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis conecta ao Redis e verifica a conexão com um ping
func NewRedis(addr, password string, db int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("erro ao conectar ao Redis: %w", err)
	}

	return &Redis{client: client, prefix: "pos:collection:"}, nil
}

// Load implementa KV.Load
func (r *Redis) Load(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("erro ao carregar coleção %s: %w", key, err)
	}
	return value, nil
}

// Save implementa KV.Save
func (r *Redis) Save(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("erro ao salvar coleção %s: %w", key, err)
	}
	return nil
}

// Delete implementa KV.Delete
func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("erro ao remover coleção %s: %w", key, err)
	}
	return nil
}

// Close implementa KV.Close
func (r *Redis) Close() error {
	return r.client.Close()
}
