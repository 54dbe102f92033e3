// Package storage elige el backend del documento de movimientos según STORE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/kardex-textil/internal/domain/repository"
	"github.com/jhoicas/kardex-textil/internal/infrastructure/filestore"
	"github.com/jhoicas/kardex-textil/internal/infrastructure/mongostore"
	"github.com/jhoicas/kardex-textil/internal/infrastructure/postgres"
	"github.com/jhoicas/kardex-textil/internal/infrastructure/redisstore"
	"github.com/jhoicas/kardex-textil/pkg/config"
)

// Store une lectura/escritura del documento y respaldos bajo otra clave.
type Store interface {
	repository.MovementStore
	repository.SnapshotWriter
}

// Open abre el store configurado. closeFn libera las conexiones; siempre es no nil.
func Open(ctx context.Context, cfg *config.Config) (store Store, closeFn func(), err error) {
	noop := func() {}
	switch cfg.Store.Driver {
	case config.StoreFile:
		return filestore.New(cfg.Store.Dir, cfg.Store.Key), noop, nil

	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, noop, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		s := postgres.NewDocumentStore(pool, cfg.Store.Key)
		if err := s.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, noop, err
		}
		return s, pool.Close, nil

	case config.StoreRedis:
		rdb, err := redisstore.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, noop, err
		}
		return redisstore.New(rdb, cfg.Store.Key), func() { _ = rdb.Close() }, nil

	case config.StoreMongo:
		s, err := mongostore.Connect(ctx, cfg.Mongo, cfg.Store.Key)
		if err != nil {
			return nil, noop, err
		}
		return s, func() { _ = s.Close(context.Background()) }, nil
	}
	return nil, noop, fmt.Errorf("STORE_DRIVER desconocido: %q", cfg.Store.Driver)
}
