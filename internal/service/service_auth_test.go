package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-recipe-share/internal/config"
	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/internal/store"
	"github.com/MKhiriev/go-recipe-share/models"
)

func testAuthConfig() config.Auth {
	return config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "recipe-share",
		TokenDuration: time.Hour,
		BcryptCost:    bcrypt.MinCost,
	}
}

// newTestAuthService backs the service with the in-memory data layer so the
// full register/login path runs against real uniqueness checks.
func newTestAuthService(t *testing.T) (AuthService, *store.MemoryStore) {
	t.Helper()
	memory := store.NewMemoryStore(logger.Nop())
	return NewAuthService(memory, testAuthConfig(), logger.Nop()), memory
}

func testRegistration() models.Registration {
	return models.Registration{
		Username: "chef_john",
		Email:    "john@example.com",
		Password: "carbonara",
		Name:     "John Smith",
		Bio:      "Professional chef",
	}
}

func TestRegister_Success(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, testRegistration())
	require.NoError(t, err)

	assert.NotZero(t, user.UserID)
	assert.Equal(t, "chef_john", user.Username)

	// the stored hash must verify against the plaintext and never equal it
	assert.NotEqual(t, "carbonara", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("carbonara")))
}

func TestRegister_MissingFields(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	for name, mutate := range map[string]func(*models.Registration){
		"no username": func(r *models.Registration) { r.Username = "" },
		"no email":    func(r *models.Registration) { r.Email = "" },
		"no password": func(r *models.Registration) { r.Password = "" },
	} {
		t.Run(name, func(t *testing.T) {
			registration := testRegistration()
			mutate(&registration)

			_, err := svc.Register(ctx, registration)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, testRegistration())
	require.NoError(t, err)

	duplicate := testRegistration()
	duplicate.Email = "different@example.com"

	_, err = svc.Register(ctx, duplicate)
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, testRegistration())
	require.NoError(t, err)

	duplicate := testRegistration()
	duplicate.Username = "different"

	_, err = svc.Register(ctx, duplicate)
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, testRegistration())
	require.NoError(t, err)

	user, err := svc.Login(ctx, models.Credentials{Email: "john@example.com", Password: "carbonara"})
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, user.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, testRegistration())
	require.NoError(t, err)

	_, err = svc.Login(ctx, models.Credentials{Email: "john@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestLogin_MissingCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), models.Credentials{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestToken_RoundTrip(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	user := models.User{UserID: 42}

	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, parsed.UserID)
}

func TestParseToken_WrongKey(t *testing.T) {
	ctx := context.Background()
	memory := store.NewMemoryStore(logger.Nop())

	issuer := NewAuthService(memory, testAuthConfig(), logger.Nop())
	token, err := issuer.CreateToken(ctx, models.User{UserID: 1})
	require.NoError(t, err)

	otherCfg := testAuthConfig()
	otherCfg.TokenSignKey = "completely-different-key"
	verifier := NewAuthService(memory, otherCfg, logger.Nop())

	_, err = verifier.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_WrongIssuer(t *testing.T) {
	ctx := context.Background()
	memory := store.NewMemoryStore(logger.Nop())

	foreignCfg := testAuthConfig()
	foreignCfg.TokenIssuer = "someone-else"
	issuer := NewAuthService(memory, foreignCfg, logger.Nop())

	token, err := issuer.CreateToken(ctx, models.User{UserID: 1})
	require.NoError(t, err)

	verifier := NewAuthService(memory, testAuthConfig(), logger.Nop())
	_, err = verifier.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_Expired(t *testing.T) {
	ctx := context.Background()
	memory := store.NewMemoryStore(logger.Nop())

	expiredCfg := testAuthConfig()
	expiredCfg.TokenDuration = -time.Minute
	issuer := NewAuthService(memory, expiredCfg, logger.Nop())

	token, err := issuer.CreateToken(ctx, models.User{UserID: 1})
	require.NoError(t, err)

	verifier := NewAuthService(memory, testAuthConfig(), logger.Nop())
	_, err = verifier.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestParseToken_Malformed(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.ParseToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
