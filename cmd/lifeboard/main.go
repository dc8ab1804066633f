package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/lifeboard-dev/lifeboard/db"
	"github.com/lifeboard-dev/lifeboard/internal/config"
	"github.com/lifeboard-dev/lifeboard/internal/handlers"
	"github.com/lifeboard-dev/lifeboard/internal/router"
	"github.com/lifeboard-dev/lifeboard/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := config.Load()

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	gdb, err := db.Connect(cfg.DatabaseURL)

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	h := handlers.New(store.NewGormStore(gdb), handlers.NewHub())
	r := router.NewRouter(h, cfg)

	log.Printf("Listening on :%s", cfg.Port)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
