package main

import (
	"context"
	"log"
	"os"

	"orderdesk/internal/config"
	"orderdesk/internal/database"
	"orderdesk/internal/domain"
	"orderdesk/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Seeds the first superAdmin account so the admin panel is reachable on a
// fresh database. Idempotent: an existing handle is left alone.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal("migrate failed: ", err)
	}

	handle := os.Getenv("SEED_ADMIN_PHONE")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if handle == "" || password == "" {
		log.Fatal("SEED_ADMIN_PHONE and SEED_ADMIN_PASSWORD are required")
	}

	users := repository.NewUserRepository(db)
	ctx := context.Background()

	exists, err := users.ExistsByHandle(ctx, handle)
	if err != nil {
		log.Fatal(err)
	}
	if exists {
		log.Printf("admin %s already exists, nothing to do", handle)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	admin := &domain.User{
		FullName:     "Super Admin",
		Handle:       handle,
		PasswordHash: string(hash),
		PhoneNumber:  handle,
		Role:         domain.RoleSuperAdmin,
		Active:       true,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal(err)
	}

	log.Printf("superAdmin created: %s (id=%d)", handle, admin.ID)
}
