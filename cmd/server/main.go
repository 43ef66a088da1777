package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/homekeep/home-maintenance-api/internal/config"
	"github.com/homekeep/home-maintenance-api/internal/database"
	"github.com/homekeep/home-maintenance-api/internal/handler"
	"github.com/homekeep/home-maintenance-api/internal/repository"
	"github.com/homekeep/home-maintenance-api/internal/router"
)

func main() {
	// A missing .env is fine; values may come from the real environment.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}

	users := repository.NewUserRepo(db)
	tasks := repository.NewTaskRepo(db)

	e := echo.New()
	router.RegisterRoutes(e,
		handler.NewUserHandler(cfg, users, tasks),
		handler.NewTaskHandler(users, tasks),
		cfg.JWTSecret,
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
