package service

import (
	"context"

	"github.com/MKhiriev/go-recipe-share/models"
)

type AuthService interface {
	Register(ctx context.Context, registration models.Registration) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	Profile(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
	CreatedRecipes(ctx context.Context, userID int64) ([]models.Recipe, error)
}

type RecipeService interface {
	Create(ctx context.Context, ownerID int64, recipe models.Recipe) (models.Recipe, error)
	Get(ctx context.Context, recipeID int64) (models.Recipe, error)
	Search(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error)
	Update(ctx context.Context, actingUserID, recipeID int64, update models.RecipeUpdate) (models.Recipe, error)
	Delete(ctx context.Context, actingUserID, recipeID int64) error
}

// FavoritesService maintains the many-to-many relationship between users and
// the recipes they favorited. Add and Remove return the identifiers
// currently in the set after the mutation.
type FavoritesService interface {
	Add(ctx context.Context, userID, recipeID int64) ([]int64, error)
	Remove(ctx context.Context, userID, recipeID int64) ([]int64, error)
	List(ctx context.Context, userID int64) ([]models.Recipe, error)
}
