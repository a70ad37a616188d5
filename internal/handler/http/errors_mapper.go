package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/internal/service"
	"github.com/MKhiriev/go-recipe-share/internal/store"
	"github.com/MKhiriev/go-recipe-share/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:      http.StatusBadRequest,
	service.ErrWrongPassword:            http.StatusUnauthorized,
	service.ErrTokenIsExpired:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:  http.StatusUnauthorized,
	service.ErrForbidden:                http.StatusForbidden,
	service.ErrValidationNoTitle:        http.StatusBadRequest,
	service.ErrValidationNoIngredients:  http.StatusBadRequest,
	service.ErrValidationNoInstructions: http.StatusBadRequest,
	service.ErrValidationBadCookingTime: http.StatusBadRequest,
	service.ErrValidationBadServings:    http.StatusBadRequest,
	service.ErrValidationBadDifficulty:  http.StatusBadRequest,

	store.ErrUsernameAlreadyExists: http.StatusBadRequest,
	store.ErrEmailAlreadyExists:    http.StatusBadRequest,
	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrRecipeNotFound:        http.StatusNotFound,
	store.ErrAlreadyFavorited:      http.StatusBadRequest,
	store.ErrNotFavorited:          http.StatusBadRequest,

	ErrInvalidRecipeID: http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError recovers a core failure into the uniform JSON failure body.
// Errors outside the taxonomy are reported as a generic server fault and are
// never passed through to the caller; every failure is logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("internal server fault")
		message = http.StatusText(http.StatusInternalServerError)
	} else {
		log.Err(err).Int("status", status).Send()
		// surface only the sentinel's text, not the wrapped chain
		for target := range errorStatusMap {
			if errors.Is(err, target) {
				message = target.Error()
				break
			}
		}
	}

	utils.WriteJSONError(w, message, status)
}
