package main

import (
	"context"
	"log"
	"time"

	"bookingservice/internal/config"
	"bookingservice/internal/database"
	"bookingservice/internal/domain"
	"bookingservice/internal/repository"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM blockings")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM properties")

	ctx := context.Background()
	properties := repository.NewPropertyRepository(db)
	bookings := repository.NewBookingRepository(db)

	log.Println("Creating properties...")
	names := []string{"Beach House", "Mountain Cabin", "City Loft"}
	created := make([]domain.Property, 0, len(names))
	for _, name := range names {
		p := domain.Property{Name: name}
		if err := properties.Create(ctx, &p); err != nil {
			log.Fatal("seed property failed:", err)
		}
		created = append(created, p)
		log.Printf("Property created: id=%d name=%s", p.ID, p.Name)
	}

	log.Println("Creating sample booking...")
	start := time.Date(time.Now().Year()+1, time.January, 1, 14, 0, 0, 0, time.UTC)
	b := domain.Booking{
		Name:        "John Doe",
		Description: "New year stay",
		StartDate:   start,
		EndDate:     start.Add(48 * time.Hour),
		PropertyID:  created[0].ID,
	}
	if err := bookings.Create(ctx, &b); err != nil {
		log.Fatal("seed booking failed:", err)
	}
	log.Printf("Booking created: id=%d", b.ID)

	log.Println("Done.")
}
