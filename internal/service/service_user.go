package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/internal/store"
	"github.com/MKhiriev/go-recipe-share/models"
)

// userService implements UserService: profile reads, profile updates with
// uniqueness re-checks, and listing the recipes a user created.
type userService struct {
	userRepository   store.UserRepository
	recipeRepository store.RecipeRepository
	bcryptCost       int
	logger           *logger.Logger
}

// NewUserService constructs a UserService over the given repositories.
func NewUserService(userRepository store.UserRepository, recipeRepository store.RecipeRepository, bcryptCost int, logger *logger.Logger) UserService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}

	return &userService{
		userRepository:   userRepository,
		recipeRepository: recipeRepository,
		bcryptCost:       bcryptCost,
		logger:           logger,
	}
}

// Profile returns the account record for userID.
// Fails with store.ErrUserNotFound if the account does not exist.
func (s *userService) Profile(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return user, nil
}

// UpdateProfile merges the update into the stored account: absent fields keep
// their current values, a present password is bcrypt-hashed before storage.
//
// Username and email uniqueness is checked here for a precise error, and
// enforced again by the repository's unique constraints so a concurrent
// update cannot slip a duplicate through.
func (s *userService) UpdateProfile(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	if update.Username != nil && *update.Username != user.Username {
		if err := s.checkUsernameFree(ctx, *update.Username); err != nil {
			return models.User{}, err
		}
		user.Username = *update.Username
	}

	if update.Email != nil && *update.Email != user.Email {
		if err := s.checkEmailFree(ctx, *update.Email); err != nil {
			return models.User{}, err
		}
		user.Email = *update.Email
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}

	if update.Password != nil {
		if *update.Password == "" {
			return models.User{}, ErrInvalidDataProvided
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), s.bcryptCost)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	updated, err := s.userRepository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return updated, nil
}

// CreatedRecipes lists every recipe owned by userID.
func (s *userService) CreatedRecipes(ctx context.Context, userID int64) ([]models.Recipe, error) {
	recipes, err := s.recipeRepository.FindRecipesByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("created recipes lookup failed: %w", err)
	}

	return recipes, nil
}

func (s *userService) checkUsernameFree(ctx context.Context, username string) error {
	_, err := s.userRepository.FindUserByUsername(ctx, username)
	switch {
	case err == nil:
		return store.ErrUsernameAlreadyExists
	case errors.Is(err, store.ErrUserNotFound):
		return nil
	default:
		return fmt.Errorf("username uniqueness check failed: %w", err)
	}
}

func (s *userService) checkEmailFree(ctx context.Context, email string) error {
	_, err := s.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		return store.ErrEmailAlreadyExists
	case errors.Is(err, store.ErrUserNotFound):
		return nil
	default:
		return fmt.Errorf("email uniqueness check failed: %w", err)
	}
}
