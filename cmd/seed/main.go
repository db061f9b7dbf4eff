package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"csatapi/internal/config"
	"csatapi/internal/db"
	"csatapi/internal/model"
	"csatapi/internal/repository"
)

// seedEntry describes one sample feedback row relative to today.
type seedEntry struct {
	name        string
	email       string
	rating      float64
	description string
	daysAgo     int
}

var seedEntries = []seedEntry{
	{"Alice Morgan", "alice@example.com", 5, "Great experience, would recommend.", 0},
	{"Ben Carter", "ben@example.com", 4.5, "Quick and painless.", 3},
	{"Chioma Eze", "chioma@example.com", 4, "Mostly smooth, minor hiccups.", 8},
	{"Alice Morgan", "alice@example.com", 3.5, "Second visit was slower.", 20},
	{"Diego Ramos", "diego@example.com", 2, "Support took too long to respond.", 45},
	{"Emma Li", "emma@example.com", 3, "Average.", 55},
	{"Farid Khan", "farid@example.com", 5, "Excellent follow-up.", 70},
	{"Grace Obi", "grace@example.com", 1, "Could not complete my request.", 85},
	{"Ben Carter", "ben@example.com", 4, "Still good months later.", 110},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Feedback{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	repo := repository.NewFeedbackRepository(gormDB)
	ctx := context.Background()
	now := time.Now()

	created := 0
	for i, entry := range seedEntries {
		desc := entry.description
		feedback := &model.Feedback{
			Name:        entry.name,
			Email:       entry.email,
			Rating:      entry.rating,
			Description: &desc,
			IPAddress:   fmt.Sprintf("10.0.0.%d", i+1),
		}
		if err := repo.Create(ctx, feedback); err != nil {
			log.Fatalf("Failed to create feedback for %s: %v", entry.name, err)
		}

		// Backdate so the windowed averages have data to chew on. GORM sets
		// CreatedAt to now on insert, so spread the rows afterwards.
		backdated := now.AddDate(0, 0, -entry.daysAgo)
		if err := gormDB.Model(feedback).Update("created_at", backdated).Error; err != nil {
			log.Fatalf("Failed to backdate feedback %d: %v", feedback.ID, err)
		}
		created++
	}

	log.Printf("Seed complete: %d feedback entries created", created)
}
