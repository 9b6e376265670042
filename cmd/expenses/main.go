package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"expenses/internal/cli"
	"expenses/internal/log"
	"expenses/internal/render"
	"expenses/internal/storage"
	"expenses/internal/storage/file"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run wires configuration, logging and storage, executes one intent and
// returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cli.LoadEnvFile()

	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	logger := cli.SetupLogger(cfg, stderr)

	intent, err := cli.ParseIntent(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, cli.ErrUnknownAction) {
			fmt.Fprint(stderr, cli.Usage)
		}
		return 2
	}

	ctx, stop := cli.SignalContext(context.Background())
	defer stop()

	store := file.New(cfg.ExpensesFile)
	repo := storage.NewRepository(store, storage.WithLogger(logger))
	runner := cli.NewRunner(repo, render.New(stdout, cfg.Language(), cfg.Currency), stdout, logger)

	if err := runner.Run(ctx, intent); err != nil {
		logger.Error("Command failed",
			log.FieldOperation, string(intent.Action),
			log.FieldPath, store.Path(),
			log.FieldError, err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
