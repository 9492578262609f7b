package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vflopes/fake-ecommerce-api/api"
	"github.com/vflopes/fake-ecommerce-api/internal/config"
	"github.com/vflopes/fake-ecommerce-api/internal/database"
	"github.com/vflopes/fake-ecommerce-api/internal/validation"
)

func main() {
	cfg := config.Load()

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(&cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	validation.RegisterCustomValidators()

	r := api.SetupRouter(db)

	log.Printf("%s %s starting on port %s", cfg.App.Name, cfg.App.Version, cfg.App.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.App.Port, r))
}
