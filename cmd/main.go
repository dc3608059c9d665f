package main

import (
	"Smart-Fridge-Backend/cmd/config"
	migration "Smart-Fridge-Backend/cmd/database/migrate"
	"Smart-Fridge-Backend/cmd/database/seed"
	"Smart-Fridge-Backend/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	if err := seed.Seed(db); err != nil {
		log.Errorf("failed to seed recipes: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to create app: %v", err)
	}

	if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
