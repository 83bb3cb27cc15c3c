package main

import (
	"context"
	"log"
	"os"

	"github.com/yameogo/gestock/internal/buildinfo"
	"github.com/yameogo/gestock/internal/cli"
	"github.com/yameogo/gestock/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
