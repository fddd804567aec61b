package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/noteapp/internal/server"
	"github.com/dmitrijs2005/noteapp/internal/server/config"
	"github.com/joho/godotenv"
)

func main() {

	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
