package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres é o driver KV sobre PostgreSQL, para instalações que já
// mantêm um servidor de banco. Usa a tabela collections criada pelas
// migrações (ver internal/infrastructure/database).
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres cria o driver sobre um pool existente
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// Load implementa KV.Load
func (p *Postgres) Load(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := p.pool.QueryRow(ctx,
		"SELECT data FROM collections WHERE key = $1", key).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("erro ao carregar coleção %s: %w", key, err)
	}
	return data, nil
}

// Save implementa KV.Save
func (p *Postgres) Save(ctx context.Context, key string, value []byte) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO collections (key, data) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		key, value)
	if err != nil {
		return fmt.Errorf("erro ao salvar coleção %s: %w", key, err)
	}
	return nil
}

// Delete implementa KV.Delete
func (p *Postgres) Delete(ctx context.Context, key string) error {
	_, err := p.pool.Exec(ctx, "DELETE FROM collections WHERE key = $1", key)
	if err != nil {
		return fmt.Errorf("erro ao remover coleção %s: %w", key, err)
	}
	return nil
}

// Close implementa KV.Close
func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
