// Package database opens the gorm handle the repositories share. PostgreSQL
// is the production store; any other DSN is treated as a SQLite database,
// which covers local development and tests.
package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// registers the cgo-free "sqlite" database/sql driver
	_ "modernc.org/sqlite"
)

// Connect dispatches on the DSN scheme.
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("connecting to postgres")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("using sqlite:", dsn)
	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}
