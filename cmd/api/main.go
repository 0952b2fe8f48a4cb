package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/edwingd18/Prueba-motorcycles/internal/app/api"
)

func main() {
	_ = godotenv.Load()
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("dealership API failed: %v", err)
	}
}
