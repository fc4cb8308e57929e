package main

import (
	"log"
	"net/http"
	"os"

	"staffdesk/docs"

	"github.com/labstack/echo/v4"

	"staffdesk/internal/cache"
	"staffdesk/internal/config"
	"staffdesk/internal/db"
	"staffdesk/internal/handler"
	"staffdesk/internal/model"
	"staffdesk/internal/repository"
	"staffdesk/internal/router"
	"staffdesk/internal/service"
)

// @title Staffdesk API
// @version 1.0
// @description Employee record store with list, get, create, partial update and delete.
// @host localhost:5000
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()

	gormDB, err := db.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop the table if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping employees table...")
		if err := gormDB.Migrator().DropTable(&model.Employee{}); err != nil {
			log.Printf("Warning: failed to drop table (may not exist): %v", err)
		}
	}

	if err := gormDB.AutoMigrate(&model.Employee{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	employeeRepo := repository.NewEmployeeRepository(gormDB)
	employeeService := service.NewEmployeeService(employeeRepo, cacheClient)
	employeeHandler := handler.NewEmployeeHandler(employeeService)

	router.Register(e, employeeHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
