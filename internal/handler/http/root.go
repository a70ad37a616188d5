package http

import (
	"net/http"

	"github.com/MKhiriev/go-recipe-share/internal/utils"
	"github.com/MKhiriev/go-recipe-share/models"
)

// welcome answers the API root with a short service banner and the two
// top-level endpoint families.
func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.WelcomeResponse{
		Message: "Welcome to the Recipe Website API",
		Endpoints: map[string]string{
			"recipes": "/api/recipes",
			"users":   "/api/users",
		},
	}, http.StatusOK)
}
