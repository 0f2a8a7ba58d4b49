package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/logger"
	"vehiclerental-backend/internal/repository"
	"vehiclerental-backend/internal/security"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type authService struct {
	renterRepo repository.RenterRepository
	tokens     security.TokenManager
}

func NewAuthService(renterRepo repository.RenterRepository, tokens security.TokenManager) AuthService {
	return &authService{renterRepo: renterRepo, tokens: tokens}
}

// Login verifies the credentials and issues an access token. Deactivated
// accounts are rejected the same way as wrong credentials.
func (s *authService) Login(ctx context.Context, username, password string) (string, *domain.Renter, error) {
	renter, err := s.renterRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", nil, persistErr("load renter", err)
	}
	if renter == nil || !renter.Active {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(renter.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(renter.ID, renter.Username, string(renter.Category))
	if err != nil {
		return "", nil, err
	}

	logger.Info("user logged in", "renter_id", renter.ID, "username", renter.Username)
	return token, renter, nil
}
