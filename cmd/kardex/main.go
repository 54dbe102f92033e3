package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"

	appkardex "github.com/jhoicas/kardex-textil/internal/application/kardex"
	"github.com/jhoicas/kardex-textil/internal/infrastructure/storage"
	"github.com/jhoicas/kardex-textil/internal/interfaces/cli"
	"github.com/jhoicas/kardex-textil/pkg/config"
	"github.com/jhoicas/kardex-textil/pkg/logger"
)

var plain = flag.Bool("plain", false, "Imprime markdown sin renderizar.")

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cli.Register(commander)

	flag.Parse()
	os.Exit(run(commander))
}

func run(commander *subcommands.Commander) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		return int(subcommands.ExitFailure)
	}
	// Los logs van a stderr para no mezclarse con las tablas.
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn", Out: os.Stderr})

	ctx := context.Background()
	store, closeStore, err := storage.Open(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return int(subcommands.ExitFailure)
	}
	defer closeStore()

	uc, err := appkardex.NewMovementUseCase(ctx, store, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return int(subcommands.ExitFailure)
	}

	return int(commander.Execute(ctx, &cli.Env{UC: uc, Key: cfg.Store.Key, Plain: *plain}))
}
