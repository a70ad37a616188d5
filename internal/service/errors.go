package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrForbidden is returned by the ownership guard when the acting user
	// is not the owner of the recipe being mutated.
	ErrForbidden = errors.New("not authorized to modify this recipe")

	ErrValidationNoTitle        = errors.New("recipe title is required")
	ErrValidationNoIngredients  = errors.New("at least one ingredient is required")
	ErrValidationNoInstructions = errors.New("at least one instruction is required")
	ErrValidationBadCookingTime = errors.New("cooking time must be a positive number of minutes")
	ErrValidationBadServings    = errors.New("servings must be a positive number")
	ErrValidationBadDifficulty  = errors.New("unknown difficulty level")
)
