package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.welcome)
		r.Post("/api/users/register", h.register)
		r.Post("/api/users/login", h.login)
		r.Get("/api/recipes", h.searchRecipes)
		r.Get("/api/recipes/{recipeID}", h.getRecipe)
	})

	// routes behind the bearer-token middleware
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users/profile", h.profile)
		r.Put("/api/users/profile", h.updateProfile)
		r.Get("/api/users/recipes", h.createdRecipes)

		r.Get("/api/users/favorites", h.listFavorites)
		r.Post("/api/users/favorites/{recipeID}", h.addFavorite)
		r.Delete("/api/users/favorites/{recipeID}", h.removeFavorite)

		r.Post("/api/recipes", h.createRecipe)
		r.Put("/api/recipes/{recipeID}", h.updateRecipe)
		r.Delete("/api/recipes/{recipeID}", h.deleteRecipe)
	})

	return router
}
