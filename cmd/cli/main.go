package main

import (
	"context"
	"log"
	"os"

	"github.com/avasiljevs/linkstorage/internal/buildinfo"
	"github.com/avasiljevs/linkstorage/internal/cli"
	"github.com/avasiljevs/linkstorage/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
