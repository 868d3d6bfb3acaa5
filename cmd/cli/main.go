package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/LabsDAO/data-gamify-network/internal/client/cli"
	"github.com/LabsDAO/data-gamify-network/internal/client/config"
	"github.com/LabsDAO/data-gamify-network/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
