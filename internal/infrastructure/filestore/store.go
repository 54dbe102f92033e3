// Package filestore guarda el documento de movimientos como un archivo JSON por clave.
// Es el equivalente en disco del localStorage del navegador: lectura completa al inicio
// y reemplazo completo en cada cambio.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jhoicas/kardex-textil/internal/domain/entity"
	"github.com/jhoicas/kardex-textil/internal/domain/repository"
)

var (
	_ repository.MovementStore  = (*Store)(nil)
	_ repository.SnapshotWriter = (*Store)(nil)
)

// Store implementación sobre el sistema de archivos.
type Store struct {
	dir string
	key string
}

// New construye el store; el directorio se crea en la primera escritura.
func New(dir, key string) *Store {
	return &Store{dir: dir, key: key}
}

// Path ruta del archivo del documento principal.
func (s *Store) Path() string {
	return s.pathFor(s.key)
}

func (s *Store) pathFor(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load lee el documento; si el archivo no existe devuelve una lista vacía.
func (s *Store) Load(_ context.Context) ([]entity.Movement, error) {
	b, err := os.ReadFile(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return []entity.Movement{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", s.Path(), err)
	}
	movements := []entity.Movement{}
	if err := json.Unmarshal(b, &movements); err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", s.Path(), err)
	}
	return movements, nil
}

// Save reemplaza el documento completo.
func (s *Store) Save(ctx context.Context, movements []entity.Movement) error {
	return s.SaveSnapshot(ctx, s.key, movements)
}

// SaveSnapshot escribe el documento bajo key (temporal + rename).
func (s *Store) SaveSnapshot(_ context.Context, key string, movements []entity.Movement) error {
	if movements == nil {
		movements = []entity.Movement{}
	}
	b, err := json.Marshal(movements)
	if err != nil {
		return fmt.Errorf("codificar documento: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio %s: %w", s.dir, err)
	}
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("crear temporal: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("escribir temporal: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar temporal: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.pathFor(key)); err != nil {
		return fmt.Errorf("reemplazar %s: %w", s.pathFor(key), err)
	}
	return nil
}
