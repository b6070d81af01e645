package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	apperrors "aurum/internal/errors"
	"aurum/internal/models"
	"aurum/internal/storage"
)

// SeedUserID is the fixed identifier of the demo user created at startup.
// Handlers fall back to it when a request omits userId.
const SeedUserID = "default-user-id"

// seedPassword is a credential placeholder; there is no login flow.
const seedPassword = "password123"

// userService handles user-related business logic.
type userService struct {
	ledger storage.Ledger
}

// NewUserService creates a new UserServicer.
func NewUserService(ledger storage.Ledger) UserServicer {
	return &userService{ledger: ledger}
}

// CreateUser creates a user with a bcrypt-hashed credential placeholder.
// Users are immutable after creation.
func (s *userService) CreateUser(username, password string) (*models.User, error) {
	_, err := s.ledger.UserByName(username)
	if err == nil {
		return nil, apperrors.ErrDuplicateUsername
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Username: username,
		Password: string(hash),
	}
	if err := s.ledger.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID returns the user with the given identifier.
func (s *userService) GetUserByID(id string) (*models.User, error) {
	return s.ledger.UserByID(id)
}

// EnsureSeedUser creates the demo user if it does not exist yet, so the
// API is usable without an account flow.
func (s *userService) EnsureSeedUser(username string) (*models.User, error) {
	user, err := s.ledger.UserByID(SeedUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user = &models.User{
		Username: username,
		Password: string(hash),
	}
	user.ID = SeedUserID
	if err := s.ledger.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}
