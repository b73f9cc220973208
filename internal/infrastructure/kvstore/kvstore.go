package kvstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound indica que a coleção ainda não foi persistida
var ErrKeyNotFound = errors.New("chave não encontrada")

// KV é a fronteira de persistência do sistema: um armazém chave-valor
// onde cada chave é o nome de uma coleção e o valor é o array JSON
// serializado da coleção inteira. Cada Save sobrescreve a coleção toda;
// não há atualização parcial.
type KV interface {
	// Load carrega o valor de uma chave; ErrKeyNotFound quando ausente
	Load(ctx context.Context, key string) ([]byte, error)

	// Save grava o valor de uma chave, sobrescrevendo o anterior
	Save(ctx context.Context, key string, value []byte) error

	// Delete remove uma chave; remover chave inexistente não é erro
	Delete(ctx context.Context, key string) error

	// Close libera os recursos do driver
	Close() error
}
