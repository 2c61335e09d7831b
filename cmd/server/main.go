package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/zaidasim/swadesh/internal/server"
	"github.com/zaidasim/swadesh/internal/server/config"
)

func main() {

	ctx := context.Background()

	// optional: local development keeps settings in .env
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
