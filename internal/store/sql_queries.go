package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-recipe-share/models"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash, name, bio)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, username, email, password_hash, name, bio, created_at, updated_at;`

	findUserByID = `SELECT user_id, username, email, password_hash, name, bio, created_at, updated_at
    FROM users
    WHERE user_id = $1;`

	findUserByEmail = `SELECT user_id, username, email, password_hash, name, bio, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByUsername = `SELECT user_id, username, email, password_hash, name, bio, created_at, updated_at
    FROM users
    WHERE username = $1;`

	updateUser = `UPDATE users
    SET username = $1, email = $2, password_hash = $3, name = $4, bio = $5, updated_at = CURRENT_TIMESTAMP
    WHERE user_id = $6
    RETURNING user_id, username, email, password_hash, name, bio, created_at, updated_at;`

	deleteUser = `DELETE FROM users WHERE user_id = $1;`

	createRecipe = `INSERT INTO recipes (title, description, ingredients, instructions, cooking_time, servings, difficulty, category, cuisine, image_url, created_by)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    RETURNING recipe_id, title, description, ingredients, instructions, cooking_time, servings, difficulty, category, cuisine, image_url, created_by, created_at, updated_at;`

	findRecipeByID = `SELECT recipe_id, title, description, ingredients, instructions, cooking_time, servings, difficulty, category, cuisine, image_url, created_by, created_at, updated_at
    FROM recipes
    WHERE recipe_id = $1;`

	findRecipesByOwner = `SELECT recipe_id, title, description, ingredients, instructions, cooking_time, servings, difficulty, category, cuisine, image_url, created_by, created_at, updated_at
    FROM recipes
    WHERE created_by = $1
    ORDER BY recipe_id;`

	updateRecipe = `UPDATE recipes
    SET title = $1, description = $2, ingredients = $3, instructions = $4, cooking_time = $5, servings = $6, difficulty = $7, category = $8, cuisine = $9, image_url = $10, updated_at = CURRENT_TIMESTAMP
    WHERE recipe_id = $11
    RETURNING recipe_id, title, description, ingredients, instructions, cooking_time, servings, difficulty, category, cuisine, image_url, created_by, created_at, updated_at;`

	deleteRecipe = `DELETE FROM recipes WHERE recipe_id = $1;`

	// addFavorite is the atomic set-add: a duplicate pair affects zero rows
	// instead of failing, which the repository reports as ErrAlreadyFavorited.
	addFavorite = `INSERT INTO favorites (user_id, recipe_id)
    VALUES ($1, $2)
    ON CONFLICT (user_id, recipe_id) DO NOTHING;`

	removeFavorite = `DELETE FROM favorites WHERE user_id = $1 AND recipe_id = $2;`

	touchUser = `UPDATE users SET updated_at = CURRENT_TIMESTAMP WHERE user_id = $1;`

	listFavoriteIDs = `SELECT recipe_id
    FROM favorites
    WHERE user_id = $1
    ORDER BY created_at, recipe_id;`

	// listFavoriteRecipes resolves favorite identifiers against the recipes
	// table. The inner join silently drops favorites whose recipe has been
	// deleted since favoriting.
	listFavoriteRecipes = `SELECT r.recipe_id, r.title, r.description, r.ingredients, r.instructions, r.cooking_time, r.servings, r.difficulty, r.category, r.cuisine, r.image_url, r.created_by, r.created_at, r.updated_at
    FROM recipes r
    JOIN favorites f ON f.recipe_id = r.recipe_id
    WHERE f.user_id = $1
    ORDER BY f.created_at, f.recipe_id;`
)

var recipeColumns = []string{
	"recipe_id", "title", "description", "ingredients", "instructions",
	"cooking_time", "servings", "difficulty", "category", "cuisine",
	"image_url", "created_by", "created_at", "updated_at",
}

// buildFilterQuery translates a [models.RecipeFilter] into a SELECT over the
// recipes table for the given SQL driver. Every present parameter contributes
// one AND-combined group; matching is case-insensitive substring via
// LOWER(...) LIKE, which behaves identically on both SQL backends. An empty
// filter selects every recipe.
func buildFilterQuery(filter models.RecipeFilter, driver string) (string, []any, error) {
	builder := sq.Select(recipeColumns...).
		From("recipes").
		OrderBy("recipe_id").
		PlaceholderFormat(sq.Dollar)

	if filter.Search != "" {
		term := likeTerm(filter.Search)
		builder = builder.Where(sq.Or{
			sq.Like{"LOWER(title)": term},
			sq.Like{"LOWER(description)": term},
			sq.Expr(ingredientsMatchExpr(driver), term),
			sq.Like{"LOWER(category)": term},
			sq.Like{"LOWER(cuisine)": term},
		})
	}

	if filter.Category != "" {
		builder = builder.Where(sq.Like{"LOWER(category)": likeTerm(filter.Category)})
	}

	if filter.Cuisine != "" {
		builder = builder.Where(sq.Like{"LOWER(cuisine)": likeTerm(filter.Cuisine)})
	}

	return builder.ToSql()
}

// ingredientsMatchExpr matches the search term against each ingredient line
// rather than the column's JSON encoding, so terms containing JSON-escaped
// characters behave the same as in the in-memory layer. The unnest function
// differs per dialect.
func ingredientsMatchExpr(driver string) string {
	if driver == "sqlite3" {
		return `EXISTS (SELECT 1 FROM json_each(recipes.ingredients) WHERE LOWER(json_each.value) LIKE ?)`
	}
	return `EXISTS (SELECT 1 FROM json_array_elements_text(recipes.ingredients::json) AS ingredient(line) WHERE LOWER(line) LIKE ?)`
}

func likeTerm(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
