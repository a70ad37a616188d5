package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation, lookup and mutation against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt, UpdatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - uniqueness violation on username/email → [ErrUsernameAlreadyExists] or
//     [ErrEmailAlreadyExists], chosen by the violated constraint.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Email, user.PasswordHash, user.Name, user.Bio)

	var created models.User
	if err := scanUser(row, &created); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: creating user failed")

		if isUniqueViolation(err) {
			return models.User{}, classifyUserConflict(err)
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByID retrieves the account whose UserID matches userID.
// Returns [ErrUserNotFound] if no such account exists.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, findUserByID, userID)
}

// FindUserByEmail retrieves the account whose Email matches email.
// Returns [ErrUserNotFound] if no such account exists.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, findUserByEmail, email)
}

// FindUserByUsername retrieves the account whose Username matches username.
// Returns [ErrUserNotFound] if no such account exists.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, findUserByUsername, username)
}

// UpdateUser overwrites the mutable profile columns of an existing account
// and advances updated_at. The merged field values are computed by the
// service layer; this method persists them atomically.
//
// Error handling:
//   - no row matched → [ErrUserNotFound].
//   - uniqueness violation → [ErrUsernameAlreadyExists] / [ErrEmailAlreadyExists].
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateUser, user.Username, user.Email, user.PasswordHash, user.Name, user.Bio, user.UserID)

	var updated models.User
	if err := scanUser(row, &updated); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: updating user failed")

		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.User{}, ErrUserNotFound
		case isUniqueViolation(err):
			return models.User{}, classifyUserConflict(err)
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}

// DeleteUser removes the account record.
// Returns [ErrUserNotFound] when no row was affected.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error: deleting user failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) findOne(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := scanUser(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.findOne").Msg("error: user lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

func scanUser(row *sql.Row, user *models.User) error {
	return row.Scan(&user.UserID, &user.Username, &user.Email, &user.PasswordHash, &user.Name, &user.Bio, &user.CreatedAt, &user.UpdatedAt)
}
