package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/quietgrove/folio/internal/portfolio/store"
	"github.com/quietgrove/folio/internal/portfolio/store/drivers/sqlite"
	"github.com/quietgrove/folio/pkg/cryptox"
)

// seedadmin creates the admin user, or resets its password when the email
// already exists. There is no registration endpoint; this is the only way
// credentials enter the system.
func main() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")

	if email == "" || password == "" {
		log.Println("Error: ADMIN_EMAIL and ADMIN_PASSWORD environment variables are required")
		log.Println("Usage: ADMIN_EMAIL=admin@example.com ADMIN_PASSWORD=yourpassword seedadmin")
		os.Exit(1)
	}

	databaseFile := os.Getenv("DATABASE_FILE")
	if databaseFile == "" {
		databaseFile = "portfolio.db"
	}

	db, err := sqlite.NewStore(fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", databaseFile))
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.ApplyMigrations(); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	ctx := context.Background()

	existing, err := db.Users().GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		if err := db.Users().UpdatePasswordHash(ctx, existing.ID, hash); err != nil {
			log.Fatalf("failed to update password: %v", err)
		}
		log.Printf("Admin user %s password updated", email)
	case errors.Is(err, store.ErrNotFound):
		if _, err := db.Users().CreateUser(ctx, email, hash); err != nil {
			log.Fatalf("failed to create user: %v", err)
		}
		log.Printf("Admin user %s created", email)
	default:
		log.Fatalf("failed to look up user: %v", err)
	}
}
