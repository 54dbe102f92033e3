// Package scheduler programa los respaldos periódicos del documento de movimientos.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/kardex-textil/internal/domain/entity"
	"github.com/jhoicas/kardex-textil/internal/domain/repository"
	"github.com/jhoicas/kardex-textil/pkg/logger"
)

// movementLister lo implementa *kardex.MovementUseCase.
type movementLister interface {
	List() []entity.Movement
}

// Scheduler ejecuta el respaldo según una expresión cron estándar de 5 campos.
type Scheduler struct {
	cron     *cron.Cron
	schedule string
	key      string
	source   movementLister
	writer   repository.SnapshotWriter
	log      *logger.Logger
	now      func() time.Time
}

// New construye el scheduler. key es la clave del documento; cada respaldo se guarda
// como <key>-<timestamp UTC>.
func New(schedule, key string, source movementLister, writer repository.SnapshotWriter, log *logger.Logger) *Scheduler {
	if log == nil {
		log = logger.Nop()
	}
	return &Scheduler{
		cron:     cron.New(),
		schedule: schedule,
		key:      key,
		source:   source,
		writer:   writer,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Start registra el job y arranca el cron. Devuelve error si la expresión es inválida.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.runBackup); err != nil {
		return fmt.Errorf("programar respaldo %q: %w", s.schedule, err)
	}
	s.log.Info().Str("schedule", s.schedule).Msg("respaldos programados")
	s.cron.Start()
	return nil
}

// Stop detiene el cron y espera a que termine un respaldo en curso.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info().Msg("scheduler detenido")
}

func (s *Scheduler) runBackup() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if _, err := s.Backup(ctx); err != nil {
		s.log.Error().Err(err).Msg("respaldo del documento")
	}
}

// Backup escribe un snapshot del estado actual y devuelve la clave usada.
func (s *Scheduler) Backup(ctx context.Context) (string, error) {
	movements := s.source.List()
	key := SnapshotKey(s.key, s.now())
	if err := s.writer.SaveSnapshot(ctx, key, movements); err != nil {
		return "", fmt.Errorf("guardar snapshot %s: %w", key, err)
	}
	s.log.Info().Str("key", key).Int("movimientos", len(movements)).Msg("respaldo guardado")
	return key, nil
}

// SnapshotKey nombre del respaldo: <key>-20060102T150405Z.
func SnapshotKey(key string, at time.Time) string {
	return key + "-" + at.UTC().Format("20060102T150405Z")
}
