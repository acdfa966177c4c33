package user

import (
	"context"
	"errors"

	userRepo "postpilot/database/repository/user"
	"postpilot/models"
)

var (
	// ErrEmailTaken is returned when registering an address that exists.
	ErrEmailTaken = errors.New("a user with this email already exists")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Plan  string `json:"plan,omitempty"`
}

// UserService manages workspace member accounts and sessions.
type UserService interface {
	RegisterUser(ctx context.Context, user models.User) (*AuthResponse, error)
	AuthenticateUser(ctx context.Context, email, password string) (*AuthResponse, error)
	RevokeAuthToken(ctx context.Context, userID string) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateFCMToken(ctx context.Context, userID, token string) error
	UpdateLinkedInToken(ctx context.Context, userID, token string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
