package main

import (
	"context"
	"log"
	"os"

	"github.com/drezzle/drezzle-cli/internal/buildinfo"
	"github.com/drezzle/drezzle-cli/internal/client/cli"
	"github.com/drezzle/drezzle-cli/internal/client/config"
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
