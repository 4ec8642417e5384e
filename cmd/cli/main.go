package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"glowshop/internal/buildinfo"
	"glowshop/internal/client/cli"
	"glowshop/internal/client/config"
	"glowshop/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
