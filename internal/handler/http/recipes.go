// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/internal/utils"
	"github.com/MKhiriev/go-recipe-share/models"
)

// searchRecipes serves the public catalogue listing. The optional query
// parameters `search`, `category` and `cuisine` narrow the result; when none
// are present every recipe is returned.
func (h *Handler) searchRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query()
	filter := models.RecipeFilter{
		Search:   query.Get("search"),
		Category: query.Get("category"),
		Cuisine:  query.Get("cuisine"),
	}

	recipes, err := h.services.RecipeService.Search(ctx, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, recipes, http.StatusOK)
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	recipeID, err := recipeIDFromURL(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	recipe, err := h.services.RecipeService.Get(ctx, recipeID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, recipe, http.StatusOK)
}

func (h *Handler) createRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var recipe models.Recipe
	if err := json.NewDecoder(r.Body).Decode(&recipe); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdRecipe, err := h.services.RecipeService.Create(ctx, userID, recipe)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("recipe_id", createdRecipe.RecipeID).Msg("recipe created")

	utils.WriteJSON(w, createdRecipe, http.StatusCreated)
}

func (h *Handler) updateRecipe(w http.ResponseWriter, r *http.Request) {
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

	var update models.RecipeUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedRecipe, err := h.services.RecipeService.Update(ctx, userID, recipeID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updatedRecipe, http.StatusOK)
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
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

	if err := h.services.RecipeService.Delete(ctx, userID, recipeID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
