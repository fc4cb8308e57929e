package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"staffdesk/internal/config"
	"staffdesk/internal/db"
	"staffdesk/internal/model"
	"staffdesk/internal/repository"
)

type seedEmployee struct {
	Name       string
	Email      string
	Position   string
	Department string
	Salary     int64
	HireDate   string
	Status     model.Status
}

var sampleEmployees = []seedEmployee{
	{"Dewi Lestari", "dewi.lestari@staffdesk.local", "HR Manager", "HR", 12000000, "2020-02-17", model.StatusActive},
	{"Budi Santoso", "budi.santoso@staffdesk.local", "Backend Engineer", "IT", 15000000, "2021-06-01", model.StatusActive},
	{"Citra Wijaya", "citra.wijaya@staffdesk.local", "Accountant", "Finance", 11000000, "2019-11-23", model.StatusActive},
	{"Agus Pratama", "agus.pratama@staffdesk.local", "Marketing Lead", "Marketing", 13500000, "2022-03-14", model.StatusActive},
	{"Rina Hartono", "rina.hartono@staffdesk.local", "Frontend Engineer", "IT", 14000000, "2023-08-07", model.StatusInactive},
	{"Joko Susilo", "joko.susilo@staffdesk.local", "Recruiter", "HR", 9000000, "2024-01-15", model.StatusActive},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Employee{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	repo := repository.NewEmployeeRepository(gormDB)
	ctx := context.Background()

	created := 0
	for _, item := range sampleEmployees {
		hireDate, err := model.ParseDate(item.HireDate)
		if err != nil {
			log.Fatalf("Invalid hire date for %s: %v", item.Name, err)
		}
		employee := model.Employee{
			Name:       item.Name,
			Email:      item.Email,
			Position:   item.Position,
			Department: item.Department,
			Salary:     decimal.NewFromInt(item.Salary),
			HireDate:   hireDate,
			Status:     item.Status,
		}
		if err := repo.Create(ctx, &employee); err != nil {
			log.Fatalf("Failed to create employee %s: %v", item.Name, err)
		}
		created++
	}

	log.Printf("Seed completed: %d employees created", created)
}
