package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-share/internal/config"
	"github.com/MKhiriev/go-recipe-share/internal/logger"
)

// Storages aggregates the repository set handed to the service layer.
type Storages struct {
	UserRepository      UserRepository
	RecipeRepository    RecipeRepository
	FavoritesRepository FavoritesRepository
}

// NewStorages selects and initializes the persistence backend:
//
//   - empty DSN → seeded in-memory store;
//   - driver "sqlite3" → local SQLite file with a bootstrapped schema;
//   - otherwise → PostgreSQL with goose migrations applied.
//
// All repositories of a backend share one connection/state.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		memory := NewMemoryStore(log)
		if err := memory.Seed(ctx); err != nil {
			return nil, fmt.Errorf("error seeding in-memory store: %w", err)
		}

		log.Info().Msg("using seeded in-memory storage")
		return &Storages{
			UserRepository:      memory,
			RecipeRepository:    memory,
			FavoritesRepository: memory,
		}, nil
	}

	var db *DB
	var err error

	switch cfg.DB.Driver {
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting storage backend: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		UserRepository:      NewUserRepository(db, log),
		RecipeRepository:    NewRecipeRepository(db, log),
		FavoritesRepository: NewFavoritesRepository(db, log),
	}, nil
}
