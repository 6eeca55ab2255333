package main

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/athletex/gym-api/internal/config"
	"github.com/athletex/gym-api/internal/model"
	"github.com/athletex/gym-api/internal/repository"
	"github.com/athletex/gym-api/internal/repository/postgres"
	"github.com/athletex/gym-api/pkg/security"
)

const (
	adminEmail      = "admin@athletex.com"
	adminName       = "Admin User"
	defaultPassword = "admin123"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		phone TEXT,
		role TEXT NOT NULL DEFAULT 'user',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS memberships (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		plan TEXT NOT NULL,
		price INTEGER NOT NULL,
		start_date TIMESTAMPTZ NOT NULL,
		end_date TIMESTAMPTZ NOT NULL,
		status TEXT NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_memberships_user_current
		ON memberships (user_id, status, end_date)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		type TEXT NOT NULL,
		class_name TEXT,
		trainer_name TEXT,
		trainer_id UUID,
		date TIMESTAMPTZ NOT NULL,
		time_slot TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'confirmed',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_user ON bookings (user_id, date DESC)`,
	`CREATE TABLE IF NOT EXISTS contact_messages (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		subject TEXT NOT NULL,
		message TEXT NOT NULL,
		read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS trainers (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		specialty TEXT NOT NULL,
		bio TEXT NOT NULL DEFAULT '',
		image TEXT NOT NULL DEFAULT '',
		experience TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

var trainers = []model.Trainer{
	{Name: "Arjun Mehta", Specialty: "Strength & Conditioning", Experience: "8 years", Bio: "Former powerlifting competitor focused on progressive overload programming."},
	{Name: "Sarah Khan", Specialty: "Yoga & Mobility", Experience: "6 years", Bio: "Certified Hatha and Vinyasa instructor specializing in recovery work."},
	{Name: "David Osei", Specialty: "HIIT & Functional Training", Experience: "5 years", Bio: "Runs the morning circuit classes and small-group functional sessions."},
}

// Seeds the schema, the admin account, and the trainer catalog.
// Safe to run repeatedly.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	ctx := context.Background()

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			log.Fatal().Err(err).Msg("failed to apply schema")
		}
	}
	log.Info().Msg("schema applied")

	userRepo := postgres.NewUserRepository(db)
	trainerRepo := postgres.NewTrainerRepository(db)

	if _, err := userRepo.GetByEmail(ctx, adminEmail); err == nil {
		log.Info().Str("email", adminEmail).Msg("admin user already exists")
	} else if errors.Is(err, repository.ErrNotFound) {
		password := os.Getenv("ADMIN_PASSWORD")
		if password == "" {
			password = defaultPassword
		}

		hash, err := security.NewBcryptHasher(12).Hash(password)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to hash admin password")
		}

		admin := &model.User{
			Name:         adminName,
			Email:        adminEmail,
			PasswordHash: hash,
			Role:         model.RoleAdmin,
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			log.Fatal().Err(err).Msg("failed to create admin user")
		}
		log.Info().Str("email", adminEmail).Msg("admin user created")
	} else {
		log.Fatal().Err(err).Msg("failed to check for admin user")
	}

	existing, err := trainerRepo.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to list trainers")
	}
	if len(existing) > 0 {
		log.Info().Int("count", len(existing)).Msg("trainer catalog already seeded")
		return
	}

	for i := range trainers {
		if err := trainerRepo.Create(ctx, &trainers[i]); err != nil {
			log.Fatal().Err(err).Str("name", trainers[i].Name).Msg("failed to create trainer")
		}
	}
	log.Info().Int("count", len(trainers)).Msg("trainer catalog seeded")
}
