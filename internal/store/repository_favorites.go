// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/models"
)

// favoritesRepository is the SQL-backed implementation of
// [FavoritesRepository].
//
// Membership is decided inside the database: AddFavorite relies on
// ON CONFLICT DO NOTHING over the (user_id, recipe_id) primary key and
// RemoveFavorite on the affected row count, so two concurrent requests
// against the same set cannot lose updates or create duplicates. Each
// mutation runs in a transaction together with the owner's updated_at
// advance; if any step fails the transaction rolls back and no partial
// state remains.
type favoritesRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFavoritesRepository constructs a [FavoritesRepository] backed by the
// provided database connection and logger.
func NewFavoritesRepository(db *DB, logger *logger.Logger) FavoritesRepository {
	logger.Debug().Msg("creating favorites repository")
	return &favoritesRepository{
		db:     db,
		logger: logger,
	}
}

// AddFavorite inserts recipeID into the user's favorite set.
//
// Error handling:
//   - pair already a member (zero rows inserted) → [ErrAlreadyFavorited];
//     the user's timestamp is not advanced in that case.
//   - transaction failures → wrapped transaction sentinels.
func (r *favoritesRepository) AddFavorite(ctx context.Context, userID, recipeID int64) error {
	return r.mutate(ctx, addFavorite, ErrAlreadyFavorited, userID, recipeID)
}

// RemoveFavorite deletes recipeID from the user's favorite set.
//
// Error handling:
//   - pair not a member (zero rows deleted) → [ErrNotFavorited];
//     the user's timestamp is not advanced in that case.
//   - transaction failures → wrapped transaction sentinels.
func (r *favoritesRepository) RemoveFavorite(ctx context.Context, userID, recipeID int64) error {
	return r.mutate(ctx, removeFavorite, ErrNotFavorited, userID, recipeID)
}

// ListFavoriteIDs returns the raw identifiers in the user's favorite set in
// favoriting order, including identifiers whose recipe has since been
// deleted.
func (r *favoritesRepository) ListFavoriteIDs(ctx context.Context, userID int64) ([]int64, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listFavoriteIDs, userID)
	if err != nil {
		log.Err(err).Str("func", "*favoritesRepository.ListFavoriteIDs").Msg("error: favorites query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

// ListFavoriteRecipes resolves the user's favorite set against the recipes
// table. A dangling identifier (recipe deleted after favoriting) is silently
// omitted from the result by the join.
func (r *favoritesRepository) ListFavoriteRecipes(ctx context.Context, userID int64) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listFavoriteRecipes, userID)
	if err != nil {
		log.Err(err).Str("func", "*favoritesRepository.ListFavoriteRecipes").Msg("error: favorites query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	recipes := make([]models.Recipe, 0)
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			log.Err(err).Str("func", "*favoritesRepository.ListFavoriteRecipes").Msg("error: scanning recipe row failed")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		recipes = append(recipes, recipe)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return recipes, nil
}

// mutate executes one atomic set mutation plus the owner's timestamp advance
// in a single transaction. zeroRowsErr is returned when the mutation affects
// no rows (duplicate add or missing remove).
func (r *favoritesRepository) mutate(ctx context.Context, query string, zeroRowsErr error, userID, recipeID int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*favoritesRepository.mutate").Msg("error: beginning transaction failed")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, query, userID, recipeID)
	if err != nil {
		log.Err(err).Str("func", "*favoritesRepository.mutate").Msg("error: favorites mutation failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return zeroRowsErr
	}

	if _, err := tx.ExecContext(ctx, touchUser, userID); err != nil {
		log.Err(err).Str("func", "*favoritesRepository.mutate").Msg("error: advancing user timestamp failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*favoritesRepository.mutate").Msg("error: committing transaction failed")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
