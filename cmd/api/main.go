package main

import (
	"log"

	"github.com/workmemory/worklog-backend/config"
	"github.com/workmemory/worklog-backend/internal/bootstrap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	db, err := bootstrap.OpenDB(&cfg.Database)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "worklog-backend",
		Version:     cfg.App.Version,
		DB:          db,
	})

	log.Printf("listening on :%s (db=%s env=%s)", cfg.Server.Port, cfg.Database.Path, cfg.App.Environment)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
