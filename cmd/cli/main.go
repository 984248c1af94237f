package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/resumerag/internal/buildinfo"
	"github.com/dmitrijs2005/resumerag/internal/client/cli"
	"github.com/dmitrijs2005/resumerag/internal/client/config"
	"github.com/dmitrijs2005/resumerag/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, err := logging.New(os.Stderr, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}

}
