package main

import (
	"log"

	"liquido-calc/internal/app"
	"liquido-calc/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	application := app.NewApplication(cfg)
	application.Run()

	log.Println("Application terminated")
}
