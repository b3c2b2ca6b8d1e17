package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/GianlucaAlves/cinelog/internal/domain"
	"github.com/GianlucaAlves/cinelog/internal/token"
)

// authService implements domain.AuthService using a UserRepository and a
// token.Manager.
type authService struct {
	repo   domain.UserRepository
	tokens token.Manager
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo domain.UserRepository, tokens token.Manager) domain.AuthService {
	return &authService{repo: repo, tokens: tokens}
}

// Register creates a new user account. It does not log the user in.
func (s *authService) Register(req domain.RegisterRequest) (*domain.User, error) {
	_, err := s.repo.GetByEmail(req.Email)
	if err == nil {
		return nil, domain.ErrEmailInUse
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &domain.User{
		Email:    req.Email,
		Username: req.Username,
		Password: string(hashed),
	}
	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	user.Password = ""
	return user, nil
}

// Login authenticates a user by email and password. Unknown email and wrong
// password both fail with the same ErrInvalidCredentials so responses cannot
// be used to enumerate accounts. The refresh token is returned separately
// for the handler to deliver as a cookie.
func (s *authService) Login(email, password string) (*domain.LoginResponse, string, error) {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.IssueAccessToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue access token: %w", err)
	}
	refreshToken, err := s.tokens.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue refresh token: %w", err)
	}

	user.Password = ""
	return &domain.LoginResponse{AccessToken: accessToken, User: *user}, refreshToken, nil
}

// Refresh validates a refresh token and mints a new access token plus a
// rotated refresh token.
func (s *authService) Refresh(refreshToken string) (string, string, error) {
	userID, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", "", err
	}
	accessToken, err := s.tokens.IssueAccessToken(userID)
	if err != nil {
		return "", "", fmt.Errorf("failed to issue access token: %w", err)
	}
	newRefresh, err := s.tokens.IssueRefreshToken(userID)
	if err != nil {
		return "", "", fmt.Errorf("failed to issue refresh token: %w", err)
	}
	return accessToken, newRefresh, nil
}

// GetUserByID retrieves a user by their ID with the password hash blanked.
func (s *authService) GetUserByID(id uint) (*domain.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}
