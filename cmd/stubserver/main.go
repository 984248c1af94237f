package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/common-nighthawk/go-figure"

	"github.com/dmitrijs2005/resumerag/internal/buildinfo"
	"github.com/dmitrijs2005/resumerag/internal/logging"
	"github.com/dmitrijs2005/resumerag/internal/server"
	"github.com/dmitrijs2005/resumerag/internal/server/config"
)

func main() {

	displayAppname("stubserver")
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, err := logging.New(os.Stdout, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := server.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		os.Exit(1)
	}

}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	fmt.Println(myFigure.String())
}
