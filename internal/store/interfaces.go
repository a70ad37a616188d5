package store

import (
	"context"

	"github.com/MKhiriev/go-recipe-share/models"
)

// UserRepository is the Credential Store contract: account records and the
// uniqueness invariant on username/email live behind it.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// RecipeRepository is the Recipe Store contract. FindRecipesByFilter applies
// the composed search predicate; reads never consult ownership.
type RecipeRepository interface {
	CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	FindRecipeByID(ctx context.Context, recipeID int64) (models.Recipe, error)
	FindRecipesByFilter(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error)
	FindRecipesByOwner(ctx context.Context, ownerID int64) ([]models.Recipe, error)
	UpdateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, recipeID int64) error
}

// FavoritesRepository maintains the user→recipe favorites set.
//
// AddFavorite and RemoveFavorite are atomic set operations: membership is
// decided by the store in a single conditional statement, never by a
// read-then-overwrite of the whole set, so concurrent requests cannot lose
// updates. Both advance the owning user's UpdatedAt in the same transaction
// and leave no partial state on failure.
type FavoritesRepository interface {
	AddFavorite(ctx context.Context, userID, recipeID int64) error
	RemoveFavorite(ctx context.Context, userID, recipeID int64) error
	ListFavoriteIDs(ctx context.Context, userID int64) ([]int64, error)
	ListFavoriteRecipes(ctx context.Context, userID int64) ([]models.Recipe, error)
}
