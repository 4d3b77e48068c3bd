// Command server runs the task management API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/taskhub/taskhub-api/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx := context.Background()

	app, err := newApplication(ctx, cfg)
	if err != nil {
		return err
	}

	app.jobRunner.Start()

	return app.startHTTPServer(ctx, app.setupRouter())
}
