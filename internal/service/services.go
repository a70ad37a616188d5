package service

import (
	"github.com/MKhiriev/go-recipe-share/internal/config"
	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/internal/store"
)

type Services struct {
	AuthService      AuthService
	UserService      UserService
	RecipeService    RecipeService
	FavoritesService FavoritesService
}

func NewServices(storages *store.Storages, cfg config.Auth, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg, logger),
		UserService:      NewUserService(storages.UserRepository, storages.RecipeRepository, cfg.BcryptCost, logger),
		RecipeService:    NewRecipeService(storages.RecipeRepository, logger),
		FavoritesService: NewFavoritesService(storages, logger),
	}
}
