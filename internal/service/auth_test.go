package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/security"
	"vehiclerental-backend/internal/service"
)

const testJWTSecret = "unit-test-secret-0123456789abcdefghij"

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testJWTSecret, 60)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	assert.NoError(t, err)

	active := &domain.Renter{
		ID:           "alice",
		Category:     domain.RenterCategoryIndividual,
		Username:     "alice",
		PasswordHash: string(hash),
		Active:       true,
	}

	t.Run("Success", func(t *testing.T) {
		renterRepo := new(MockRenterRepo)
		svc := service.NewAuthService(renterRepo, tokens)
		renterRepo.On("GetByUsername", ctx, "alice").Return(active, nil)

		token, renter, err := svc.Login(ctx, "alice", "correct-horse")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "alice", renter.ID)

		claims, err := tokens.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, "alice", claims.RenterID)
		assert.Equal(t, string(domain.RenterCategoryIndividual), claims.Category)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		renterRepo := new(MockRenterRepo)
		svc := service.NewAuthService(renterRepo, tokens)
		renterRepo.On("GetByUsername", ctx, "alice").Return(active, nil)

		_, _, err := svc.Login(ctx, "alice", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("Unknown User", func(t *testing.T) {
		renterRepo := new(MockRenterRepo)
		svc := service.NewAuthService(renterRepo, tokens)
		renterRepo.On("GetByUsername", ctx, "ghost").Return(nil, nil)

		_, _, err := svc.Login(ctx, "ghost", "whatever")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("Deactivated Account", func(t *testing.T) {
		inactive := &domain.Renter{
			ID:           "bob",
			Category:     domain.RenterCategoryIndividual,
			Username:     "bob",
			PasswordHash: string(hash),
			Active:       false,
		}
		renterRepo := new(MockRenterRepo)
		svc := service.NewAuthService(renterRepo, tokens)
		renterRepo.On("GetByUsername", ctx, "bob").Return(inactive, nil)

		_, _, err := svc.Login(ctx, "bob", "correct-horse")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestUserService_CreateRenter(t *testing.T) {
	ctx := context.Background()

	t.Run("Success Hashes Password And Activates", func(t *testing.T) {
		renterRepo := new(MockRenterRepo)
		svc := service.NewUserService(renterRepo)

		r := &domain.Renter{ID: "carol", Category: domain.RenterCategoryCorporate, Username: "carol"}
		renterRepo.On("GetByID", ctx, "carol").Return(nil, nil)
		renterRepo.On("GetByUsername", ctx, "carol").Return(nil, nil)
		renterRepo.On("Create", ctx, r).Return(nil)

		assert.NoError(t, svc.CreateRenter(ctx, r, "long-enough-password"))
		assert.True(t, r.Active)
		assert.NotEmpty(t, r.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(r.PasswordHash), []byte("long-enough-password")))
	})

	t.Run("Short Password Rejected", func(t *testing.T) {
		svc := service.NewUserService(new(MockRenterRepo))
		r := &domain.Renter{ID: "carol", Category: domain.RenterCategoryCorporate, Username: "carol"}
		assert.Error(t, svc.CreateRenter(ctx, r, "short"))
	})

	t.Run("Username Taken", func(t *testing.T) {
		renterRepo := new(MockRenterRepo)
		svc := service.NewUserService(renterRepo)

		r := &domain.Renter{ID: "carol2", Category: domain.RenterCategoryCorporate, Username: "carol"}
		renterRepo.On("GetByID", ctx, "carol2").Return(nil, nil)
		renterRepo.On("GetByUsername", ctx, "carol").Return(&domain.Renter{ID: "carol"}, nil)

		err := svc.CreateRenter(ctx, r, "long-enough-password")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already taken")
	})
}
