package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/forgo/gala/api/internal/config"
	"github.com/forgo/gala/api/internal/database"
	"github.com/forgo/gala/api/internal/repository"
	"github.com/forgo/gala/api/internal/schema"
	"github.com/forgo/gala/api/internal/service"
)

func main() {
	// Flags for customization
	eventCount := flag.Int("events", 10, "Number of events to seed (0 to skip)")
	bookingCount := flag.Int("bookings", 0, "Number of bookings to seed (0 to skip)")
	eventMode := flag.String("mode", "", "Event mode: in_person, online, or hybrid (default: random)")
	prefix := flag.String("prefix", "seed_", "Prefix for seeded titles and emails")
	wipe := flag.Bool("wipe", false, "Delete previously seeded data for the prefix before seeding")
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	manager := database.NewManager(database.Config{
		URL:       cfg.Database.URL,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	}, cfg.Database.ConnectTimeout)
	defer func() { _ = manager.Close() }()

	ctx := context.Background()
	db, err := manager.Acquire(ctx)
	if err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := db.Ping(ctx); err != nil {
		slog.Error("database is not responding", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("connected to database",
		slog.String("url", cfg.Database.URL),
		slog.String("database", cfg.Database.Database),
	)

	// Apply table and index definitions
	if err := schema.Default().Apply(ctx, db); err != nil {
		slog.Error("failed to apply schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	eventRepo := repository.NewEventRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Initialize services
	eventService := service.NewEventService(service.EventServiceConfig{
		Repo: eventRepo,
	})

	bookingService := service.NewBookingService(service.BookingServiceConfig{
		Repo:   bookingRepo,
		Events: eventService,
	})

	seeder := service.NewSeederService(db, eventService, bookingService)

	summary := map[string]any{
		"prefix": *prefix,
	}

	if *wipe {
		result, err := seeder.Cleanup(ctx, *prefix)
		if err != nil {
			slog.Error("cleanup failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		slog.Info("cleanup complete",
			slog.Int("deleted", result.Deleted),
			slog.Int64("duration_ms", result.Duration),
		)
		summary["deleted"] = result.Deleted
	}

	if *eventCount > 0 {
		result, err := seeder.SeedEvents(ctx, service.SeedEventsRequest{
			Count:  *eventCount,
			Mode:   *eventMode,
			Prefix: *prefix,
		})
		if err != nil {
			slog.Error("event seeding failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		slog.Info("events seeded",
			slog.Int("created", result.Created),
			slog.Int64("duration_ms", result.Duration),
		)
		summary["events_created"] = result.Created
		summary["event_ids"] = result.IDs
	}

	if *bookingCount > 0 {
		result, err := seeder.SeedBookings(ctx, service.SeedBookingsRequest{
			Count:  *bookingCount,
			Prefix: *prefix,
		})
		if err != nil {
			slog.Error("booking seeding failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		slog.Info("bookings seeded",
			slog.Int("created", result.Created),
			slog.Int64("duration_ms", result.Duration),
		)
		summary["bookings_created"] = result.Created
	}

	if *outputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(summary)
	} else {
		fmt.Println("Seeding Complete")
		fmt.Println("================")
		fmt.Printf("Prefix:    %s\n", *prefix)
		if deleted, ok := summary["deleted"]; ok {
			fmt.Printf("Deleted:   %d\n", deleted)
		}
		if created, ok := summary["events_created"]; ok {
			fmt.Printf("Events:    %d\n", created)
		}
		if created, ok := summary["bookings_created"]; ok {
			fmt.Printf("Bookings:  %d\n", created)
		}
		fmt.Println()
		fmt.Printf("Cleanup later with: seed -wipe -events 0 -prefix %s\n", *prefix)
	}
}
