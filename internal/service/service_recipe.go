package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/internal/store"
	"github.com/MKhiriev/go-recipe-share/models"
)

// recipeService implements RecipeService: recipe CRUD with validation, the
// ownership guard on every mutation, and filtered search.
type recipeService struct {
	recipeRepository store.RecipeRepository
	logger           *logger.Logger
}

// NewRecipeService constructs a RecipeService over the given repository.
func NewRecipeService(recipeRepository store.RecipeRepository, logger *logger.Logger) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		logger:           logger,
	}
}

// Create publishes a new recipe owned by ownerID. The owner is taken from
// the authenticated caller, never from the request body, and is immutable
// afterwards. Difficulty defaults to Intermediate when absent.
//
// Fails with a validation sentinel if a required field is missing or a
// numeric field is out of range.
func (s *recipeService) Create(ctx context.Context, ownerID int64, recipe models.Recipe) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	if recipe.Difficulty == "" {
		recipe.Difficulty = models.DifficultyIntermediate
	}

	if err := validateRecipe(recipe); err != nil {
		log.Error().Err(err).Msg("invalid recipe data provided")
		return models.Recipe{}, err
	}

	recipe.RecipeID = 0
	recipe.CreatedBy = ownerID

	created, err := s.recipeRepository.CreateRecipe(ctx, recipe)
	if err != nil {
		log.Err(err).Int64("owner", ownerID).Msg("recipe creation ended with error")
		return models.Recipe{}, fmt.Errorf("recipe creation ended with error: %w", err)
	}

	return created, nil
}

// Get returns a single recipe. Reads are public and never consult the
// ownership guard.
func (s *recipeService) Get(ctx context.Context, recipeID int64) (models.Recipe, error) {
	recipe, err := s.recipeRepository.FindRecipeByID(ctx, recipeID)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("recipe lookup failed: %w", err)
	}

	return recipe, nil
}

// Search returns every recipe matching the filter. The zero filter matches
// all recipes; no parameter combination is an error.
func (s *recipeService) Search(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error) {
	recipes, err := s.recipeRepository.FindRecipesByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("recipe search failed: %w", err)
	}

	return recipes, nil
}

// Update merges the update into the stored recipe and persists it, provided
// the acting user owns the recipe. A failed authorization or validation
// leaves the stored record untouched.
func (s *recipeService) Update(ctx context.Context, actingUserID, recipeID int64, update models.RecipeUpdate) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	recipe, err := s.recipeRepository.FindRecipeByID(ctx, recipeID)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("recipe lookup failed: %w", err)
	}

	if err := authorizeOwner(actingUserID, recipe); err != nil {
		log.Error().Int64("acting", actingUserID).Int64("owner", recipe.CreatedBy).Msg("recipe mutation denied")
		return models.Recipe{}, err
	}

	update.Apply(&recipe)
	if err := validateRecipe(recipe); err != nil {
		log.Error().Err(err).Msg("invalid recipe data provided")
		return models.Recipe{}, err
	}

	updated, err := s.recipeRepository.UpdateRecipe(ctx, recipe)
	if err != nil {
		log.Err(err).Int64("id", recipeID).Msg("recipe update failed")
		return models.Recipe{}, fmt.Errorf("recipe update failed: %w", err)
	}

	return updated, nil
}

// Delete removes the recipe, provided the acting user owns it. Favorites
// referencing the recipe are resolved lazily at read time, so no cleanup
// happens here.
func (s *recipeService) Delete(ctx context.Context, actingUserID, recipeID int64) error {
	log := logger.FromContext(ctx)

	recipe, err := s.recipeRepository.FindRecipeByID(ctx, recipeID)
	if err != nil {
		return fmt.Errorf("recipe lookup failed: %w", err)
	}

	if err := authorizeOwner(actingUserID, recipe); err != nil {
		log.Error().Int64("acting", actingUserID).Int64("owner", recipe.CreatedBy).Msg("recipe deletion denied")
		return err
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, recipeID); err != nil {
		log.Err(err).Int64("id", recipeID).Msg("recipe deletion failed")
		return fmt.Errorf("recipe deletion failed: %w", err)
	}

	return nil
}

// authorizeOwner is the ownership guard: a pure check with no side effects,
// allowed iff the acting user created the recipe. It is applied before every
// mutating or deleting operation; reads never call it.
func authorizeOwner(actingUserID int64, recipe models.Recipe) error {
	if recipe.CreatedBy != actingUserID {
		return ErrForbidden
	}
	return nil
}

func validateRecipe(recipe models.Recipe) error {
	switch {
	case recipe.Title == "":
		return ErrValidationNoTitle
	case len(recipe.Ingredients) == 0:
		return ErrValidationNoIngredients
	case len(recipe.Instructions) == 0:
		return ErrValidationNoInstructions
	case recipe.CookingTime <= 0:
		return ErrValidationBadCookingTime
	case recipe.Servings <= 0:
		return ErrValidationBadServings
	case !recipe.Difficulty.Valid():
		return ErrValidationBadDifficulty
	}
	return nil
}
