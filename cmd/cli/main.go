package main

import (
	"context"
	"log"
	"os"

	"blogcli/internal/buildinfo"
	"blogcli/internal/client/cli"
	"blogcli/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())

}
