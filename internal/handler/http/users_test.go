package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-recipe-share/models"
)

func TestProfile_Success(t *testing.T) {
	router, services := newTestRouter(t)
	bearer := bearerFor(t, services, "chef_john@example.com", "carbonara")

	recorder := doRequest(t, router, http.MethodGet, "/api/users/profile", bearer, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	profile := decodeBody[models.User](t, recorder)
	assert.Equal(t, "chef_john", profile.Username)
	assert.NotContains(t, recorder.Body.String(), "password")
}

func TestProfile_RequiresAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/users/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestUpdateProfile_Success(t *testing.T) {
	router, services := newTestRouter(t)
	bearer := bearerFor(t, services, "chef_john@example.com", "carbonara")

	newBio := "Now also a baker"
	recorder := doRequest(t, router, http.MethodPut, "/api/users/profile", bearer, models.UserUpdate{Bio: &newBio})
	require.Equal(t, http.StatusOK, recorder.Code)

	updated := decodeBody[models.User](t, recorder)
	assert.Equal(t, newBio, updated.Bio)
	assert.Equal(t, "chef_john", updated.Username)
}

func TestUpdateProfile_UsernameTaken(t *testing.T) {
	router, services := newTestRouter(t)
	bearer := bearerFor(t, services, "chef_john@example.com", "carbonara")

	taken := "cooking_master"
	recorder := doRequest(t, router, http.MethodPut, "/api/users/profile", bearer, models.UserUpdate{Username: &taken})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreatedRecipes(t *testing.T) {
	router, services := newTestRouter(t)
	bearer := bearerFor(t, services, "chef_john@example.com", "carbonara")

	recorder := doRequest(t, router, http.MethodGet, "/api/users/recipes", bearer, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recipes := decodeBody[[]models.Recipe](t, recorder)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Spaghetti Carbonara", recipes[0].Title)
}

func TestListFavorites_Seeded(t *testing.T) {
	router, services := newTestRouter(t)
	bearer := bearerFor(t, services, "chef_john@example.com", "carbonara")

	recorder := doRequest(t, router, http.MethodGet, "/api/users/favorites", bearer, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	favorites := decodeBody[[]models.Recipe](t, recorder)
	require.Len(t, favorites, 1)
	assert.Equal(t, "Spaghetti Carbonara", favorites[0].Title)
}

func TestAddFavorite_Success(t *testing.T) {
	router, services := newTestRouter(t)
	bearer := bearerFor(t, services, "chef_john@example.com", "carbonara")

	// recipe 2 (Chicken Tikka Masala) is not yet in chef_john's set
	recorder := doRequest(t, router, http.MethodPost, "/api/users/favorites/2", bearer, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	response := decodeBody[models.FavoritesResponse](t, recorder)
	assert.Equal(t, "Recipe added to favorites", response.Message)
	assert.Equal(t, []int64{1, 2}, response.Favorites)
}

func TestAddFavorite_Duplicate(t *testing.T) {
	router, services := newTestRouter(t)
	bearer := bearerFor(t, services, "chef_john@example.com", "carbonara")

	// recipe 1 was favorited at seed time
	recorder := doRequest(t, router, http.MethodPost, "/api/users/favorites/1", bearer, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAddFavorite_UnknownRecipe(t *testing.T) {
	router, services := newTestRouter(t)
	bearer := bearerFor(t, services, "chef_john@example.com", "carbonara")

	recorder := doRequest(t, router, http.MethodPost, "/api/users/favorites/999", bearer, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestAddFavorite_InvalidID(t *testing.T) {
	router, services := newTestRouter(t)
	bearer := bearerFor(t, services, "chef_john@example.com", "carbonara")

	recorder := doRequest(t, router, http.MethodPost, "/api/users/favorites/abc", bearer, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRemoveFavorite_Success(t *testing.T) {
	router, services := newTestRouter(t)
	bearer := bearerFor(t, services, "chef_john@example.com", "carbonara")

	recorder := doRequest(t, router, http.MethodDelete, "/api/users/favorites/1", bearer, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	response := decodeBody[models.FavoritesResponse](t, recorder)
	assert.Equal(t, "Recipe removed from favorites", response.Message)
	assert.Empty(t, response.Favorites)
}

func TestRemoveFavorite_NotFavorited(t *testing.T) {
	router, services := newTestRouter(t)
	bearer := bearerFor(t, services, "chef_john@example.com", "carbonara")

	recorder := doRequest(t, router, http.MethodDelete, "/api/users/favorites/2", bearer, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
