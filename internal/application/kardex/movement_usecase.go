// Package kardex contiene los casos de uso del kardex de producción textil:
// registro de movimientos, vista analítica, vista sintética y exportaciones.
package kardex

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/kardex-textil/internal/domain"
	"github.com/jhoicas/kardex-textil/internal/domain/entity"
	domainkardex "github.com/jhoicas/kardex-textil/internal/domain/kardex"
	"github.com/jhoicas/kardex-textil/internal/domain/repository"
	"github.com/jhoicas/kardex-textil/pkg/logger"
)

// MovementUseCase mantiene en memoria la lista ordenada de movimientos (más reciente primero)
// y es la única fuente de verdad del sistema. Cada mutación reescribe el documento completo
// en el MovementStore antes de confirmarse en memoria: si la escritura falla, la lista queda
// como estaba y se devuelve domain.ErrPersistence.
type MovementUseCase struct {
	mu        sync.Mutex
	store     repository.MovementStore
	movements []entity.Movement
	log       *logger.Logger

	now   func() time.Time
	newID func() string
}

// NewMovementUseCase carga el documento del store y construye el caso de uso.
func NewMovementUseCase(ctx context.Context, store repository.MovementStore, log *logger.Logger) (*MovementUseCase, error) {
	if log == nil {
		log = logger.Nop()
	}
	loaded, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: cargar documento: %v", domain.ErrPersistence, err)
	}
	seen := make(map[string]struct{}, len(loaded))
	for _, m := range loaded {
		if !m.Valid() {
			return nil, fmt.Errorf("%w: movimiento %q del documento no cumple las invariantes", domain.ErrInvalidInput, m.ID)
		}
		if _, dup := seen[m.ID]; dup {
			return nil, fmt.Errorf("%w: id %q repetido en el documento", domain.ErrInvalidInput, m.ID)
		}
		seen[m.ID] = struct{}{}
	}
	log.Info().Int("movimientos", len(loaded)).Msg("documento de movimientos cargado")

	return &MovementUseCase{
		store:     store,
		movements: loaded,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     func() string { return uuid.New().String() },
	}, nil
}

// Add crea un movimiento con id nuevo y fecha actual y lo inserta al frente de la lista.
func (uc *MovementUseCase) Add(ctx context.Context, f entity.MovementFields) (entity.Movement, error) {
	if !f.Valid() {
		return entity.Movement{}, domain.ErrInvalidInput
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	m := entity.Movement{ID: uc.newID(), Date: uc.now()}.Apply(f)

	next := make([]entity.Movement, 0, len(uc.movements)+1)
	next = append(next, m)
	next = append(next, uc.movements...)
	if err := uc.commit(ctx, next); err != nil {
		return entity.Movement{}, err
	}
	return m, nil
}

// Update reemplaza los campos editables del movimiento id; ID y fecha de creación no cambian.
// Si el id no existe devuelve domain.ErrNotFound y no persiste nada.
func (uc *MovementUseCase) Update(ctx context.Context, id string, f entity.MovementFields) (entity.Movement, error) {
	if !f.Valid() {
		return entity.Movement{}, domain.ErrInvalidInput
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexOf(id)
	if i < 0 {
		return entity.Movement{}, domain.ErrNotFound
	}
	next := append([]entity.Movement(nil), uc.movements...)
	next[i] = next[i].Apply(f)
	if err := uc.commit(ctx, next); err != nil {
		return entity.Movement{}, err
	}
	return next[i], nil
}

// Remove elimina el movimiento id de forma inmediata e irreversible.
// Si el id no existe devuelve domain.ErrNotFound y la lista no cambia.
func (uc *MovementUseCase) Remove(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	i := uc.indexOf(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	next := make([]entity.Movement, 0, len(uc.movements)-1)
	next = append(next, uc.movements[:i]...)
	next = append(next, uc.movements[i+1:]...)
	return uc.commit(ctx, next)
}

// Import agrega movimientos ya existentes (ej. exportados desde la app de navegador)
// conservando su id y fecha. Los ids ya presentes se omiten. Los importados se intercalan
// por fecha (más reciente primero) sin reordenar los que ya estaban en la lista.
// Devuelve cuántos se agregaron.
func (uc *MovementUseCase) Import(ctx context.Context, movements []entity.Movement) (int, error) {
	for _, m := range movements {
		if !m.Valid() {
			return 0, fmt.Errorf("%w: movimiento %q no cumple las invariantes", domain.ErrInvalidInput, m.ID)
		}
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	seen := make(map[string]struct{}, len(uc.movements)+len(movements))
	for _, m := range uc.movements {
		seen[m.ID] = struct{}{}
	}
	var incoming []entity.Movement
	for _, m := range movements {
		if _, ok := seen[m.ID]; ok {
			continue
		}
		seen[m.ID] = struct{}{}
		incoming = append(incoming, m.Apply(m.Fields()))
	}
	if len(incoming) == 0 {
		return 0, nil
	}
	sort.SliceStable(incoming, func(i, j int) bool { return incoming[i].Date.After(incoming[j].Date) })
	if err := uc.commit(ctx, mergeByDate(uc.movements, incoming)); err != nil {
		return 0, err
	}
	return len(incoming), nil
}

// mergeByDate intercala incoming (ya ordenado) en current. Un importado entra antes del
// primer movimiento actual con fecha anterior; el orden relativo de current no cambia.
func mergeByDate(current, incoming []entity.Movement) []entity.Movement {
	out := make([]entity.Movement, 0, len(current)+len(incoming))
	i, j := 0, 0
	for i < len(current) && j < len(incoming) {
		if incoming[j].Date.After(current[i].Date) {
			out = append(out, incoming[j])
			j++
			continue
		}
		out = append(out, current[i])
		i++
	}
	out = append(out, current[i:]...)
	return append(out, incoming[j:]...)
}

// List devuelve una copia de la lista, más reciente primero.
func (uc *MovementUseCase) List() []entity.Movement {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return append([]entity.Movement(nil), uc.movements...)
}

// Search filtra la lista por término (vista analítica). Término vacío = todo.
func (uc *MovementUseCase) Search(term string) []entity.Movement {
	return domainkardex.Filter(uc.List(), term)
}

// Get obtiene un movimiento por id.
func (uc *MovementUseCase) Get(id string) (entity.Movement, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	i := uc.indexOf(id)
	if i < 0 {
		return entity.Movement{}, domain.ErrNotFound
	}
	return uc.movements[i], nil
}

func (uc *MovementUseCase) indexOf(id string) int {
	for i, m := range uc.movements {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// commit persiste next y solo entonces lo adopta como estado en memoria. Requiere uc.mu.
func (uc *MovementUseCase) commit(ctx context.Context, next []entity.Movement) error {
	if err := uc.store.Save(ctx, next); err != nil {
		uc.log.Error().Err(err).Int("movimientos", len(next)).Msg("persistir documento de movimientos")
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	uc.movements = next
	return nil
}
