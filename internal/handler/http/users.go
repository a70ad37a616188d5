package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/internal/utils"
	"github.com/MKhiriev/go-recipe-share/models"
)

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.services.UserService.Profile(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.UserService.UpdateProfile(ctx, userID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updatedUser, http.StatusOK)
}

func (h *Handler) createdRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	recipes, err := h.services.UserService.CreatedRecipes(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, recipes, http.StatusOK)
}

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	favorites, err := h.services.FavoritesService.List(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, favorites, http.StatusOK)
}

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	recipeID, err := recipeIDFromURL(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	favoriteIDs, err := h.services.FavoritesService.Add(ctx, userID, recipeID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.FavoritesResponse{
		Message:   "Recipe added to favorites",
		Favorites: favoriteIDs,
	}, http.StatusOK)
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	recipeID, err := recipeIDFromURL(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	favoriteIDs, err := h.services.FavoritesService.Remove(ctx, userID, recipeID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.FavoritesResponse{
		Message:   "Recipe removed from favorites",
		Favorites: favoriteIDs,
	}, http.StatusOK)
}

// recipeIDFromURL parses the {recipeID} path parameter as a positive int64.
func recipeIDFromURL(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "recipeID")

	recipeID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || recipeID <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRecipeID, raw)
	}

	return recipeID, nil
}
