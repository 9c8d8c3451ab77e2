package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"kiosk-lab/cli"
	"kiosk-lab/errors"
	"kiosk-lab/internal"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		// Rejected payloads are already reported on stdout.
		if !stderrors.Is(err, errors.ErrValidation) {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		}
		os.Exit(1)
	}
}

// run keeps deferred cleanup (signal handler) ahead of os.Exit.
func run(args []string) error {
	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.NewApp(log, config, os.Stdout, os.Stderr).Run(ctx, args)
}
