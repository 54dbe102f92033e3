package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appkardex "github.com/jhoicas/kardex-textil/internal/application/kardex"
	"github.com/jhoicas/kardex-textil/internal/infrastructure/excel"
	"github.com/jhoicas/kardex-textil/internal/infrastructure/filestore"
	infrapdf "github.com/jhoicas/kardex-textil/internal/infrastructure/pdf"
	"github.com/jhoicas/kardex-textil/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/kardex-textil/internal/interfaces/http"
	"github.com/jhoicas/kardex-textil/internal/scheduler"
	"github.com/jhoicas/kardex-textil/pkg/config"
	"github.com/jhoicas/kardex-textil/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, closeStore, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir store de movimientos")
	}
	defer closeStore()

	movementUC, err := appkardex.NewMovementUseCase(ctx, store, log)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar documento de movimientos")
	}
	exportUC := appkardex.NewExportUseCase(
		movementUC,
		infrapdf.NewMarotoSummaryGenerator(""),
		excel.NewMovementExporter(),
	)

	// Respaldos periódicos al directorio local, sea cual sea el driver principal.
	var sched *scheduler.Scheduler
	if cfg.Backup.Schedule != "" {
		backups := filestore.New(cfg.Backup.Dir, cfg.Store.Key)
		sched = scheduler.New(cfg.Backup.Schedule, cfg.Store.Key, movementUC, backups, log)
		if err := sched.Start(); err != nil {
			log.Fatal().Err(err).Msg("BACKUP_CRON inválido")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Kardex Têxtil API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MovementUC: movementUC,
		ExportUC:   exportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if sched != nil {
		sched.Stop()
	}

	log.Info().Msg("aplicación detenida")
}
