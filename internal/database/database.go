package database

import (
	"context"
	"database/sql"
	"log"
	"time"

	"stitchmes/internal/config"

	_ "github.com/lib/pq"
	"go.uber.org/fx"
)

// PostgresDB wraps the sql.DB pool so fx has a concrete type to provide
type PostgresDB struct {
	DB *sql.DB
}

// NewDatabase creates a new PostgreSQL connection pool with lifecycle management
func NewDatabase(lc fx.Lifecycle, cfg *config.Config) (*PostgresDB, error) {
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	log.Println("Connected to PostgreSQL!")

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Println("Closing PostgreSQL pool...")
			return db.Close()
		},
	})

	return &PostgresDB{DB: db}, nil
}
