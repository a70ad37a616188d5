package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/models"
)

// recipeRepository is the SQL-backed implementation of [RecipeRepository].
//
// Ingredient and instruction lists are stored as JSON-encoded text columns,
// which keeps the column set identical across both SQL backends.
type recipeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRecipeRepository constructs a [RecipeRepository] backed by the provided
// database connection and logger.
func NewRecipeRepository(db *DB, logger *logger.Logger) RecipeRepository {
	logger.Debug().Msg("creating recipe repository")
	return &recipeRepository{
		db:     db,
		logger: logger,
	}
}

// CreateRecipe persists a new recipe record and returns the fully populated
// [models.Recipe] with server-assigned fields (RecipeID, CreatedAt,
// UpdatedAt). The owner in CreatedBy is stored as given and is immutable
// afterwards: no update path touches the column.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	ingredients, instructions, err := encodeRecipeLists(recipe)
	if err != nil {
		return models.Recipe{}, err
	}

	row := r.db.QueryRowContext(ctx, createRecipe,
		recipe.Title, recipe.Description, ingredients, instructions,
		recipe.CookingTime, recipe.Servings, string(recipe.Difficulty),
		recipe.Category, recipe.Cuisine, recipe.ImageURL, recipe.CreatedBy)

	created, err := scanRecipe(row)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.CreateRecipe").Msg("error: creating recipe failed")
		return models.Recipe{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindRecipeByID retrieves a single recipe.
// Returns [ErrRecipeNotFound] if no such recipe exists.
func (r *recipeRepository) FindRecipeByID(ctx context.Context, recipeID int64) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findRecipeByID, recipeID)

	found, err := scanRecipe(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Recipe{}, ErrRecipeNotFound
		}

		log.Err(err).Str("func", "*recipeRepository.FindRecipeByID").Msg("error: recipe lookup failed")
		return models.Recipe{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// FindRecipesByFilter returns every recipe matching the composed search
// predicate. The WHERE clause is built dynamically with squirrel; an empty
// filter imposes no constraint and returns all recipes.
func (r *recipeRepository) FindRecipesByFilter(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFilterQuery(filter, r.db.driver)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.FindRecipesByFilter").Msg("error: building filter query failed")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryRecipes(ctx, query, args...)
}

// FindRecipesByOwner returns every recipe created by ownerID, oldest first.
func (r *recipeRepository) FindRecipesByOwner(ctx context.Context, ownerID int64) ([]models.Recipe, error) {
	return r.queryRecipes(ctx, findRecipesByOwner, ownerID)
}

// UpdateRecipe overwrites the mutable columns of an existing recipe and
// advances updated_at. The caller is responsible for authorization; the
// merged field values are computed by the service layer.
//
// Returns [ErrRecipeNotFound] if no row matched.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	ingredients, instructions, err := encodeRecipeLists(recipe)
	if err != nil {
		return models.Recipe{}, err
	}

	row := r.db.QueryRowContext(ctx, updateRecipe,
		recipe.Title, recipe.Description, ingredients, instructions,
		recipe.CookingTime, recipe.Servings, string(recipe.Difficulty),
		recipe.Category, recipe.Cuisine, recipe.ImageURL, recipe.RecipeID)

	updated, err := scanRecipe(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Recipe{}, ErrRecipeNotFound
		}

		log.Err(err).Str("func", "*recipeRepository.UpdateRecipe").Msg("error: updating recipe failed")
		return models.Recipe{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteRecipe removes the recipe record. Favorites referencing it are left
// in place and resolved lazily at read time.
//
// Returns [ErrRecipeNotFound] when no row was affected.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, recipeID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteRecipe, recipeID)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.DeleteRecipe").Msg("error: deleting recipe failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecipeNotFound
	}

	return nil
}

func (r *recipeRepository) queryRecipes(ctx context.Context, query string, args ...any) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.queryRecipes").Msg("error: recipes query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	recipes := make([]models.Recipe, 0)
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			log.Err(err).Str("func", "*recipeRepository.queryRecipes").Msg("error: scanning recipe row failed")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		recipes = append(recipes, recipe)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return recipes, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (models.Recipe, error) {
	var recipe models.Recipe
	var ingredients, instructions []byte
	var difficulty string

	err := row.Scan(&recipe.RecipeID, &recipe.Title, &recipe.Description,
		&ingredients, &instructions, &recipe.CookingTime, &recipe.Servings,
		&difficulty, &recipe.Category, &recipe.Cuisine, &recipe.ImageURL,
		&recipe.CreatedBy, &recipe.CreatedAt, &recipe.UpdatedAt)
	if err != nil {
		return models.Recipe{}, err
	}

	recipe.Difficulty = models.Difficulty(difficulty)
	if err := json.Unmarshal(ingredients, &recipe.Ingredients); err != nil {
		return models.Recipe{}, fmt.Errorf("%w: ingredients: %w", ErrScanningRow, err)
	}
	if err := json.Unmarshal(instructions, &recipe.Instructions); err != nil {
		return models.Recipe{}, fmt.Errorf("%w: instructions: %w", ErrScanningRow, err)
	}

	return recipe, nil
}

func encodeRecipeLists(recipe models.Recipe) (ingredients, instructions []byte, err error) {
	ingredients, err = json.Marshal(recipe.Ingredients)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: ingredients: %w", ErrBuildingSQLQuery, err)
	}

	instructions, err = json.Marshal(recipe.Instructions)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: instructions: %w", ErrBuildingSQLQuery, err)
	}

	return ingredients, instructions, nil
}
