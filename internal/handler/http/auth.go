package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/internal/service"
	"github.com/MKhiriev/go-recipe-share/internal/store"
	"github.com/MKhiriev/go-recipe-share/internal/utils"
	"github.com/MKhiriev/go-recipe-share/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var registration models.Registration
	if err := json.NewDecoder(r.Body).Decode(&registration); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, registration)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUsernameAlreadyExists) || errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("user already exists")
			utils.WriteJSONError(w, "user already exists", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	h.respondWithToken(w, r, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword):
			// unknown email and wrong password are reported identically
			log.Err(err).Msg("no user was found/wrong password")
			utils.WriteJSONError(w, "invalid email or password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	h.respondWithToken(w, r, foundUser, http.StatusOK)
}

// respondWithToken issues a bearer token for user and writes the auth
// response body.
func (h *Handler) respondWithToken(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		UserID:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
		Name:     user.Name,
		Bio:      user.Bio,
		Token:    token.SignedString,
	}, status)
}
