package models

// AuthResponse is returned by the register and login endpoints: the public
// profile of the authenticated user plus a freshly issued bearer token.
type AuthResponse struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	Token    string `json:"token"`
}

// FavoritesResponse is returned by favorite add/remove operations. Favorites
// carries the identifiers currently in the user's favorite set.
type FavoritesResponse struct {
	Message   string  `json:"message"`
	Favorites []int64 `json:"favorite_recipes"`
}

// ErrorResponse is the uniform failure body of every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WelcomeResponse is served at the API root and lists the endpoint groups.
type WelcomeResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}
