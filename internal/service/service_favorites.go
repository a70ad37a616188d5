// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/internal/store"
	"github.com/MKhiriev/go-recipe-share/models"
)

// favoritesService implements FavoritesService.
//
// It enforces referential validity at write time (both the user and the
// recipe must exist when a favorite is added) and relies on the repository's
// atomic set primitives for idempotency, so a duplicate add or a missing
// remove is rejected without mutating anything — including the user's
// modification timestamp.
type favoritesService struct {
	userRepository      store.UserRepository
	recipeRepository    store.RecipeRepository
	favoritesRepository store.FavoritesRepository
	logger              *logger.Logger
}

// NewFavoritesService constructs a FavoritesService over the given
// repositories.
func NewFavoritesService(storages *store.Storages, logger *logger.Logger) FavoritesService {
	return &favoritesService{
		userRepository:      storages.UserRepository,
		recipeRepository:    storages.RecipeRepository,
		favoritesRepository: storages.FavoritesRepository,
		logger:              logger,
	}
}

// Add inserts recipeID into the user's favorite set and returns the updated
// set of identifiers.
//
// Failure conditions, in checking order:
//   - store.ErrUserNotFound — the user does not exist.
//   - store.ErrRecipeNotFound — the recipe does not exist (referential check
//     at write time; the reference is not maintained afterwards).
//   - store.ErrAlreadyFavorited — the pair is already a member. Repeated
//     adds are rejected, not silently accepted.
func (s *favoritesService) Add(ctx context.Context, userID, recipeID int64) ([]int64, error) {
	log := logger.FromContext(ctx)

	if _, err := s.userRepository.FindUserByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("favorites user lookup failed: %w", err)
	}

	if _, err := s.recipeRepository.FindRecipeByID(ctx, recipeID); err != nil {
		return nil, fmt.Errorf("favorites recipe lookup failed: %w", err)
	}

	if err := s.favoritesRepository.AddFavorite(ctx, userID, recipeID); err != nil {
		log.Err(err).Int64("user", userID).Int64("recipe", recipeID).Msg("favorite add failed")
		return nil, fmt.Errorf("favorite add failed: %w", err)
	}

	return s.favoritesRepository.ListFavoriteIDs(ctx, userID)
}

// Remove deletes recipeID from the user's favorite set and returns the
// updated set of identifiers.
//
// Failure conditions:
//   - store.ErrUserNotFound — the user does not exist.
//   - store.ErrNotFavorited — the pair is not currently a member.
//
// The recipe itself is not required to exist: removing a dangling favorite
// is legitimate.
func (s *favoritesService) Remove(ctx context.Context, userID, recipeID int64) ([]int64, error) {
	log := logger.FromContext(ctx)

	if _, err := s.userRepository.FindUserByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("favorites user lookup failed: %w", err)
	}

	if err := s.favoritesRepository.RemoveFavorite(ctx, userID, recipeID); err != nil {
		log.Err(err).Int64("user", userID).Int64("recipe", recipeID).Msg("favorite remove failed")
		return nil, fmt.Errorf("favorite remove failed: %w", err)
	}

	return s.favoritesRepository.ListFavoriteIDs(ctx, userID)
}

// List resolves the user's favorite set to full recipes. A favorite whose
// recipe was deleted after favoriting is silently omitted — the documented
// lazy resolution of dangling references.
//
// Fails with store.ErrUserNotFound if the user does not exist.
func (s *favoritesService) List(ctx context.Context, userID int64) ([]models.Recipe, error) {
	if _, err := s.userRepository.FindUserByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("favorites user lookup failed: %w", err)
	}

	recipes, err := s.favoritesRepository.ListFavoriteRecipes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("favorites listing failed: %w", err)
	}

	return recipes, nil
}
