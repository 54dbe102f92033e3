package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/kardex-textil/internal/domain/entity"
	"github.com/jhoicas/kardex-textil/internal/domain/repository"
)

var (
	_ repository.MovementStore  = (*DocumentStore)(nil)
	_ repository.SnapshotWriter = (*DocumentStore)(nil)
)

// schemaSQL tabla clave-valor: una fila por documento, valor JSONB completo.
const schemaSQL = `
	CREATE TABLE IF NOT EXISTS kv_documents (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

// DocumentStore guarda el documento de movimientos en la tabla kv_documents.
type DocumentStore struct {
	q   Querier
	key string
}

// NewDocumentStore construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentStore(q Querier, key string) *DocumentStore {
	return &DocumentStore{q: q, key: key}
}

// EnsureSchema crea la tabla si no existe.
func (s *DocumentStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear tabla kv_documents: %w", err)
	}
	return nil
}

// Load obtiene el documento; si no hay fila devuelve una lista vacía.
func (s *DocumentStore) Load(ctx context.Context) ([]entity.Movement, error) {
	var raw []byte
	err := s.q.QueryRow(ctx, `SELECT value FROM kv_documents WHERE key = $1`, s.key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []entity.Movement{}, nil
		}
		return nil, fmt.Errorf("leer documento %q: %w", s.key, err)
	}
	movements := []entity.Movement{}
	if err := json.Unmarshal(raw, &movements); err != nil {
		return nil, fmt.Errorf("decodificar documento %q: %w", s.key, err)
	}
	return movements, nil
}

// Save reemplaza el documento completo (upsert de la fila).
func (s *DocumentStore) Save(ctx context.Context, movements []entity.Movement) error {
	return s.SaveSnapshot(ctx, s.key, movements)
}

// SaveSnapshot escribe el documento bajo otra clave.
func (s *DocumentStore) SaveSnapshot(ctx context.Context, key string, movements []entity.Movement) error {
	if movements == nil {
		movements = []entity.Movement{}
	}
	b, err := json.Marshal(movements)
	if err != nil {
		return fmt.Errorf("codificar documento: %w", err)
	}
	query := `
		INSERT INTO kv_documents (key, value, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := s.q.Exec(ctx, query, key, string(b)); err != nil {
		return fmt.Errorf("guardar documento %q: %w", key, err)
	}
	return nil
}
