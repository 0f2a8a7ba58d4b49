package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/logger"
	"vehiclerental-backend/internal/repository"
)

type userService struct {
	renterRepo repository.RenterRepository
}

func NewUserService(renterRepo repository.RenterRepository) UserService {
	return &userService{renterRepo: renterRepo}
}

func (s *userService) CreateRenter(ctx context.Context, r *domain.Renter, password string) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	existing, err := s.renterRepo.GetByID(ctx, r.ID)
	if err != nil {
		return persistErr("load renter", err)
	}
	if existing != nil {
		return fmt.Errorf("user with ID '%s' already exists", r.ID)
	}

	taken, err := s.renterRepo.GetByUsername(ctx, r.Username)
	if err != nil {
		return persistErr("load renter", err)
	}
	if taken != nil {
		return fmt.Errorf("username '%s' already taken", r.Username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	r.PasswordHash = string(hash)
	r.Active = true

	if err := s.renterRepo.Create(ctx, r); err != nil {
		return persistErr("create renter", err)
	}
	logger.Info("renter created", "renter_id", r.ID, "category", r.Category)
	return nil
}

func (s *userService) UpdateRenter(ctx context.Context, renterID, name, contactInfo string) (*domain.Renter, error) {
	r, err := s.renterRepo.GetByID(ctx, renterID)
	if err != nil {
		return nil, persistErr("load renter", err)
	}
	if r == nil {
		return nil, &domain.UserNotFoundError{RenterID: renterID}
	}

	if name != "" {
		r.Name = name
	}
	if contactInfo != "" {
		r.ContactInfo = contactInfo
	}

	if err := s.renterRepo.Update(ctx, r); err != nil {
		return nil, persistErr("update renter", err)
	}
	return r, nil
}

func (s *userService) ChangePassword(ctx context.Context, renterID, newPassword string) error {
	if len(newPassword) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	r, err := s.renterRepo.GetByID(ctx, renterID)
	if err != nil {
		return persistErr("load renter", err)
	}
	if r == nil {
		return &domain.UserNotFoundError{RenterID: renterID}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	r.PasswordHash = string(hash)

	if err := s.renterRepo.Update(ctx, r); err != nil {
		return persistErr("update renter", err)
	}
	return nil
}

// DeactivateRenter soft-deletes the account. History is kept; the account can
// no longer log in or book.
func (s *userService) DeactivateRenter(ctx context.Context, renterID string) error {
	r, err := s.renterRepo.GetByID(ctx, renterID)
	if err != nil {
		return persistErr("load renter", err)
	}
	if r == nil {
		return &domain.UserNotFoundError{RenterID: renterID}
	}

	r.Active = false
	if err := s.renterRepo.Update(ctx, r); err != nil {
		return persistErr("update renter", err)
	}
	logger.Info("renter deactivated", "renter_id", renterID)
	return nil
}

func (s *userService) GetRenter(ctx context.Context, renterID string) (*domain.Renter, error) {
	r, err := s.renterRepo.GetByID(ctx, renterID)
	if err != nil {
		return nil, persistErr("load renter", err)
	}
	if r == nil {
		return nil, &domain.UserNotFoundError{RenterID: renterID}
	}
	return r, nil
}

func (s *userService) ListRenters(ctx context.Context) ([]domain.Renter, error) {
	renters, err := s.renterRepo.List(ctx)
	if err != nil {
		return nil, persistErr("list renters", err)
	}
	return renters, nil
}
