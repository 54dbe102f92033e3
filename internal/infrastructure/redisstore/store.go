// Package redisstore guarda el documento de movimientos como un valor string de Redis.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/kardex-textil/internal/domain/entity"
	"github.com/jhoicas/kardex-textil/internal/domain/repository"
	"github.com/jhoicas/kardex-textil/pkg/config"
)

var (
	_ repository.MovementStore  = (*Store)(nil)
	_ repository.SnapshotWriter = (*Store)(nil)
)

// Store documento completo bajo una clave, sin expiración.
type Store struct {
	rdb *redis.Client
	key string
}

// NewClient crea el cliente y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}

// New construye el store sobre un cliente existente.
func New(rdb *redis.Client, key string) *Store {
	return &Store{rdb: rdb, key: key}
}

// Load lee el documento; clave inexistente = lista vacía.
func (s *Store) Load(ctx context.Context) ([]entity.Movement, error) {
	val, err := s.rdb.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []entity.Movement{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %q: %w", s.key, err)
	}
	movements := []entity.Movement{}
	if err := json.Unmarshal(val, &movements); err != nil {
		return nil, fmt.Errorf("decodificar %q: %w", s.key, err)
	}
	return movements, nil
}

// Save reemplaza el documento completo con SET.
func (s *Store) Save(ctx context.Context, movements []entity.Movement) error {
	return s.SaveSnapshot(ctx, s.key, movements)
}

// SaveSnapshot escribe el documento bajo otra clave.
func (s *Store) SaveSnapshot(ctx context.Context, key string, movements []entity.Movement) error {
	if movements == nil {
		movements = []entity.Movement{}
	}
	b, err := json.Marshal(movements)
	if err != nil {
		return fmt.Errorf("codificar documento: %w", err)
	}
	if err := s.rdb.Set(ctx, key, b, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}
