package repository

import (
	"context"

	"github.com/jhoicas/kardex-textil/internal/domain/entity"
)

// MovementStore define el puerto de persistencia del documento de movimientos (DIP).
// El documento completo se lee una vez al arrancar y se reemplaza entero en cada cambio;
// no hay actualizaciones parciales.
type MovementStore interface {
	// Load devuelve la lista guardada, en el orden guardado. Un documento inexistente es una lista vacía.
	Load(ctx context.Context) ([]entity.Movement, error)
	// Save reemplaza el documento completo.
	Save(ctx context.Context, movements []entity.Movement) error
}

// SnapshotWriter guarda una copia del documento bajo una clave distinta (respaldos).
type SnapshotWriter interface {
	SaveSnapshot(ctx context.Context, key string, movements []entity.Movement) error
}
