// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements a REST client for the recipe-share server.
//
// APIClient wraps the shared resty HTTP client, carries the bearer token
// obtained from Register or Login on every authenticated request, and maps
// non-2xx responses to the sentinel errors defined in errors.go.
package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/internal/utils"
	"github.com/MKhiriev/go-recipe-share/models"
)

type APIClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewAPIClient constructs a client pointed at the given server address.
// The address may omit the scheme; "http://" is assumed.
func NewAPIClient(address string, timeout time.Duration, logger *logger.Logger) (*APIClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	httpClient := utils.NewHTTPClient()
	httpClient.
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &APIClient{client: httpClient, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken stores token (whitespace-trimmed) for use in the Authorization
// header of all subsequent authenticated requests.
func (c *APIClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently held by the client, or an empty
// string if none has been set.
func (c *APIClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Register creates a new account via POST /api/users/register. On success the
// returned bearer token is stored for subsequent authenticated calls.
func (c *APIClient) Register(ctx context.Context, registration models.Registration) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(registration).
		SetResult(&auth).
		Post("/api/users/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	c.SetToken(auth.Token)
	return auth, nil
}

// Login authenticates via POST /api/users/login. On success the returned
// bearer token is stored for subsequent authenticated calls.
func (c *APIClient) Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&auth).
		Post("/api/users/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	c.SetToken(auth.Token)
	return auth, nil
}

// Profile fetches the authenticated user's profile.
func (c *APIClient) Profile(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := c.authorized().
		SetContext(ctx).
		SetResult(&user).
		Get("/api/users/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// UpdateProfile applies a partial profile update for the authenticated user.
func (c *APIClient) UpdateProfile(ctx context.Context, update models.UserUpdate) (models.User, error) {
	var user models.User

	resp, err := c.authorized().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&user).
		Put("/api/users/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// SearchRecipes lists recipes matching filter; an empty filter lists all.
func (c *APIClient) SearchRecipes(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error) {
	var recipes []models.Recipe

	request := c.client.R().
		SetContext(ctx).
		SetResult(&recipes)

	if filter.Search != "" {
		request.SetQueryParam("search", filter.Search)
	}
	if filter.Category != "" {
		request.SetQueryParam("category", filter.Category)
	}
	if filter.Cuisine != "" {
		request.SetQueryParam("cuisine", filter.Cuisine)
	}

	resp, err := request.Get("/api/recipes")
	if err != nil {
		return nil, fmt.Errorf("search recipes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return recipes, nil
}

// GetRecipe fetches a single recipe by ID.
func (c *APIClient) GetRecipe(ctx context.Context, recipeID int64) (models.Recipe, error) {
	var recipe models.Recipe

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&recipe).
		Get("/api/recipes/" + strconv.FormatInt(recipeID, 10))
	if err != nil {
		return models.Recipe{}, fmt.Errorf("get recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	return recipe, nil
}

// CreateRecipe publishes a new recipe owned by the authenticated user.
func (c *APIClient) CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	var created models.Recipe

	resp, err := c.authorized().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(recipe).
		SetResult(&created).
		Post("/api/recipes")
	if err != nil {
		return models.Recipe{}, fmt.Errorf("create recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	return created, nil
}

// UpdateRecipe applies a partial update to a recipe the authenticated user owns.
func (c *APIClient) UpdateRecipe(ctx context.Context, recipeID int64, update models.RecipeUpdate) (models.Recipe, error) {
	var updated models.Recipe

	resp, err := c.authorized().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&updated).
		Put("/api/recipes/" + strconv.FormatInt(recipeID, 10))
	if err != nil {
		return models.Recipe{}, fmt.Errorf("update recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	return updated, nil
}

// DeleteRecipe removes a recipe the authenticated user owns.
func (c *APIClient) DeleteRecipe(ctx context.Context, recipeID int64) error {
	resp, err := c.authorized().
		SetContext(ctx).
		Delete("/api/recipes/" + strconv.FormatInt(recipeID, 10))
	if err != nil {
		return fmt.Errorf("delete recipe request: %w", err)
	}

	return mapHTTPError(resp)
}

// CreatedRecipes lists the recipes published by the authenticated user.
func (c *APIClient) CreatedRecipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe

	resp, err := c.authorized().
		SetContext(ctx).
		SetResult(&recipes).
		Get("/api/users/recipes")
	if err != nil {
		return nil, fmt.Errorf("created recipes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return recipes, nil
}

// AddFavorite adds recipeID to the authenticated user's favorites and returns
// the resulting favorite set.
func (c *APIClient) AddFavorite(ctx context.Context, recipeID int64) (models.FavoritesResponse, error) {
	var favorites models.FavoritesResponse

	resp, err := c.authorized().
		SetContext(ctx).
		SetResult(&favorites).
		Post("/api/users/favorites/" + strconv.FormatInt(recipeID, 10))
	if err != nil {
		return models.FavoritesResponse{}, fmt.Errorf("add favorite request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FavoritesResponse{}, err
	}

	return favorites, nil
}

// RemoveFavorite removes recipeID from the authenticated user's favorites and
// returns the resulting favorite set.
func (c *APIClient) RemoveFavorite(ctx context.Context, recipeID int64) (models.FavoritesResponse, error) {
	var favorites models.FavoritesResponse

	resp, err := c.authorized().
		SetContext(ctx).
		SetResult(&favorites).
		Delete("/api/users/favorites/" + strconv.FormatInt(recipeID, 10))
	if err != nil {
		return models.FavoritesResponse{}, fmt.Errorf("remove favorite request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FavoritesResponse{}, err
	}

	return favorites, nil
}

// ListFavorites fetches the full recipes currently favorited by the
// authenticated user.
func (c *APIClient) ListFavorites(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe

	resp, err := c.authorized().
		SetContext(ctx).
		SetResult(&recipes).
		Get("/api/users/favorites")
	if err != nil {
		return nil, fmt.Errorf("list favorites request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return recipes, nil
}

func (c *APIClient) authorized() *resty.Request {
	request := c.client.R()
	if token := c.Token(); token != "" {
		request.SetHeader("Authorization", "Bearer "+token)
	}
	return request
}
