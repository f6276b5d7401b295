package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"userdeck/internal/buildinfo"
	"userdeck/internal/client/cli"
	"userdeck/internal/client/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.Run(ctx)
}
