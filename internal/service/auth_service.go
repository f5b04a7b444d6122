package service

import (
	"errors"

	"github.com/workout-tracker/internal/models"
	"github.com/workout-tracker/internal/repository"
	"github.com/workout-tracker/pkg/password"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
)

// AuthService handles registration and credential verification
type AuthService struct {
	userRepo *repository.UserRepository
	verifier password.Verifier
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo *repository.UserRepository, verifier password.Verifier) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		verifier: verifier,
	}
}

// Register creates a new user. Uniqueness is decided by the insert itself;
// there is no check-then-insert window.
func (s *AuthService) Register(username, plainPassword string) (*models.User, error) {
	stored, err := s.verifier.Hash(plainPassword)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: username,
		Password: stored,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and returns the matching user.
func (s *AuthService) Login(username, plainPassword string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.verifier.Compare(plainPassword, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
