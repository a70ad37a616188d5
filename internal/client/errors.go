package client

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError. Callers can
// match against them with [errors.Is] without inspecting raw status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)
