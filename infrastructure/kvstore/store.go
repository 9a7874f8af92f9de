// Package kvstore guarda os blobs serializados dos ledgers em um armazenamento chave/valor.
// O servidor lê todos os blobs de uma vez e grava um blob inteiro por requisição.
package kvstore

import (
	"context"
)

// BlobStore é o armazenamento chave/valor dos ledgers
type BlobStore interface {
	// Get retorna nil, nil quando a chave não existe
	Get(ctx context.Context, key string) ([]byte, error)
	// GetMany lê as chaves em uma única ida ao armazenamento. Chaves ausentes ficam fora do mapa.
	GetMany(ctx context.Context, keys ...string) (map[string][]byte, error)
	// Set sobrescreve o blob inteiro da chave
	Set(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Close() error
}
