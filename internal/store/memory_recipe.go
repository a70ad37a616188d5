package store

import (
	"context"
	"sort"

	"github.com/MKhiriev/go-recipe-share/models"
)

// CreateRecipe implements [RecipeRepository].
func (m *MemoryStore) CreateRecipe(_ context.Context, recipe models.Recipe) (models.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextRecipeID++
	recipe.RecipeID = m.nextRecipeID
	recipe.CreatedAt = m.now()
	recipe.UpdatedAt = recipe.CreatedAt

	m.recipes[recipe.RecipeID] = cloneRecipe(recipe)
	return recipe, nil
}

// FindRecipeByID implements [RecipeRepository].
func (m *MemoryStore) FindRecipeByID(_ context.Context, recipeID int64) (models.Recipe, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	recipe, ok := m.recipes[recipeID]
	if !ok {
		return models.Recipe{}, ErrRecipeNotFound
	}
	return cloneRecipe(recipe), nil
}

// FindRecipesByFilter implements [RecipeRepository] by applying the filter's
// predicate to every stored recipe. The zero filter matches everything.
func (m *MemoryStore) FindRecipesByFilter(_ context.Context, filter models.RecipeFilter) ([]models.Recipe, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make([]models.Recipe, 0)
	for _, recipe := range m.recipes {
		if filter.Matches(recipe) {
			matched = append(matched, cloneRecipe(recipe))
		}
	}

	sortRecipesByID(matched)
	return matched, nil
}

// FindRecipesByOwner implements [RecipeRepository].
func (m *MemoryStore) FindRecipesByOwner(_ context.Context, ownerID int64) ([]models.Recipe, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	owned := make([]models.Recipe, 0)
	for _, recipe := range m.recipes {
		if recipe.CreatedBy == ownerID {
			owned = append(owned, cloneRecipe(recipe))
		}
	}

	sortRecipesByID(owned)
	return owned, nil
}

// UpdateRecipe implements [RecipeRepository]. Owner and creation timestamp
// are preserved from the stored record regardless of the input.
func (m *MemoryStore) UpdateRecipe(_ context.Context, recipe models.Recipe) (models.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.recipes[recipe.RecipeID]
	if !ok {
		return models.Recipe{}, ErrRecipeNotFound
	}

	recipe.CreatedBy = current.CreatedBy
	recipe.CreatedAt = current.CreatedAt
	recipe.UpdatedAt = m.now()

	m.recipes[recipe.RecipeID] = cloneRecipe(recipe)
	return recipe, nil
}

// DeleteRecipe implements [RecipeRepository]. Favorite sets referencing the
// recipe are deliberately left alone: dangling identifiers are omitted
// lazily when favorites are listed.
func (m *MemoryStore) DeleteRecipe(_ context.Context, recipeID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.recipes[recipeID]; !ok {
		return ErrRecipeNotFound
	}

	delete(m.recipes, recipeID)
	return nil
}

func sortRecipesByID(recipes []models.Recipe) {
	sort.Slice(recipes, func(i, j int) bool {
		return recipes[i].RecipeID < recipes[j].RecipeID
	})
}
