package store

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-recipe-share/models"
)

// AddFavorite implements [FavoritesRepository]. Membership test and insert
// run under one write lock, so the set can never hold duplicates and the
// user's timestamp advances only on an actual insert.
func (m *MemoryStore) AddFavorite(_ context.Context, userID, recipeID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return ErrUserNotFound
	}

	if slices.Contains(m.favorites[userID], recipeID) {
		return ErrAlreadyFavorited
	}

	m.favorites[userID] = append(m.favorites[userID], recipeID)

	user.UpdatedAt = m.now()
	m.users[userID] = user
	return nil
}

// RemoveFavorite implements [FavoritesRepository].
func (m *MemoryStore) RemoveFavorite(_ context.Context, userID, recipeID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return ErrUserNotFound
	}

	idx := slices.Index(m.favorites[userID], recipeID)
	if idx < 0 {
		return ErrNotFavorited
	}

	m.favorites[userID] = slices.Delete(m.favorites[userID], idx, idx+1)

	user.UpdatedAt = m.now()
	m.users[userID] = user
	return nil
}

// ListFavoriteIDs implements [FavoritesRepository]. Dangling identifiers are
// included; they are only filtered when resolving to recipes.
func (m *MemoryStore) ListFavoriteIDs(_ context.Context, userID int64) ([]int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]int64(nil), m.favorites[userID]...), nil
}

// ListFavoriteRecipes implements [FavoritesRepository]. A favorite whose
// recipe has been deleted since favoriting is silently omitted.
func (m *MemoryStore) ListFavoriteRecipes(_ context.Context, userID int64) ([]models.Recipe, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	recipes := make([]models.Recipe, 0, len(m.favorites[userID]))
	for _, recipeID := range m.favorites[userID] {
		if recipe, ok := m.recipes[recipeID]; ok {
			recipes = append(recipes, cloneRecipe(recipe))
		}
	}

	return recipes, nil
}
