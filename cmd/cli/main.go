package main

import (
	"context"
	"log"

	"github.com/dmarkov/taskdeck/internal/cli"
	"github.com/dmarkov/taskdeck/internal/config"
)

func main() {

	cfg := config.LoadConfig()
	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
