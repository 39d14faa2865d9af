package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"wakens/config"
	"wakens/helper"
	"wakens/infras/otel"
	"wakens/infras/postgres"
	hotelRepository "wakens/internal/domains/hotel/repository"
	roomRepository "wakens/internal/domains/room/repository"
	"wakens/internal/seed"
)

const (
	argLength = 2
)

func main() {
	if len(os.Args) < argLength {
		log.Fatal("Migration action (up/down/drop/step-up/seed) is required")
	}

	cfg := config.Get()

	switch os.Args[1] {
	case "up":
		if err := helper.Up(cfg); err != nil {
			log.Fatal(err)
		}
	case "down":
		if err := helper.Down(cfg); err != nil {
			log.Fatal(err)
		}
	case "drop":
		if err := helper.Drop(cfg); err != nil {
			log.Fatal(err)
		}
	case "step-up":
		if err := helper.StepUp(cfg); err != nil {
			log.Fatal(err)
		}
	case "seed":
		if err := seedCatalog(cfg); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatal("Invalid action. Use 'up', 'down', 'drop', 'step-up' or 'seed'")
	}
}

// seedCatalog loads the canned catalog into Postgres once. A non-empty
// hotels table means a previous seed (or real data) is in place, so the
// run becomes a no-op instead of duplicating rows.
func seedCatalog(cfg *config.Config) error {
	ctx := context.Background()

	ot := otel.New(cfg)
	db := postgres.New(cfg)

	hotels := hotelRepository.New(db, ot)
	reviews := hotelRepository.NewReview(db, ot)
	rooms := roomRepository.New(db, ot)
	metrics := roomRepository.NewMetric(db, ot)

	count, err := hotels.Count(ctx)
	if err != nil {
		return fmt.Errorf("checking existing catalog: %w", err)
	}

	if count > 0 {
		log.Printf("catalog already has %d hotels, skipping seed", count)

		return nil
	}

	for _, hotel := range seed.Hotels() {
		if err := hotels.Insert(ctx, hotel); err != nil {
			return fmt.Errorf("seeding hotel %s: %w", hotel.ID, err)
		}
	}

	for _, room := range seed.Rooms() {
		if err := rooms.Insert(ctx, room); err != nil {
			return fmt.Errorf("seeding room %s: %w", room.ID, err)
		}
	}

	for _, review := range seed.Reviews() {
		if err := reviews.Insert(ctx, review); err != nil {
			return fmt.Errorf("seeding review %s: %w", review.ID, err)
		}
	}

	for _, metric := range seed.Metrics() {
		if err := metrics.Insert(ctx, metric); err != nil {
			return fmt.Errorf("seeding metrics for room %s: %w", metric.RoomID, err)
		}
	}

	log.Println("catalog seeded successfully")

	return nil
}
