package store

import (
	"context"

	"github.com/MKhiriev/go-recipe-share/models"
)

// CreateUser implements [UserRepository]. The uniqueness check on username
// and email and the insert happen under one write lock, so a concurrent
// duplicate registration cannot slip through.
func (m *MemoryStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkUniquenessLocked(user.Username, user.Email, 0); err != nil {
		return models.User{}, err
	}

	m.nextUserID++
	user.UserID = m.nextUserID
	user.CreatedAt = m.now()
	user.UpdatedAt = user.CreatedAt

	m.users[user.UserID] = user
	return user, nil
}

// FindUserByID implements [UserRepository].
func (m *MemoryStore) FindUserByID(_ context.Context, userID int64) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

// FindUserByEmail implements [UserRepository].
func (m *MemoryStore) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// FindUserByUsername implements [UserRepository].
func (m *MemoryStore) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// UpdateUser implements [UserRepository]. The record is replaced atomically;
// a failed uniqueness check leaves the stored record untouched.
func (m *MemoryStore) UpdateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.users[user.UserID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	if err := m.checkUniquenessLocked(user.Username, user.Email, user.UserID); err != nil {
		return models.User{}, err
	}

	user.CreatedAt = current.CreatedAt
	user.UpdatedAt = m.now()

	m.users[user.UserID] = user
	return user, nil
}

// DeleteUser implements [UserRepository].
func (m *MemoryStore) DeleteUser(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[userID]; !ok {
		return ErrUserNotFound
	}

	delete(m.users, userID)
	delete(m.favorites, userID)
	return nil
}

// checkUniquenessLocked enforces the global uniqueness invariant on username
// and email, ignoring the record identified by selfID (for updates).
// Callers must hold the write lock.
func (m *MemoryStore) checkUniquenessLocked(username, email string, selfID int64) error {
	for _, existing := range m.users {
		if existing.UserID == selfID {
			continue
		}
		if existing.Username == username {
			return ErrUsernameAlreadyExists
		}
		if existing.Email == email {
			return ErrEmailAlreadyExists
		}
	}
	return nil
}
