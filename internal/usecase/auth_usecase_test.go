package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/scheffer1/CVFast-sub000/internal/domain"
	"github.com/scheffer1/CVFast-sub000/internal/usecase"
	"github.com/scheffer1/CVFast-sub000/pkg/auth"
	"github.com/scheffer1/CVFast-sub000/pkg/clock"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUC(repo *MockUserRepo) (domain.AuthUsecase, *auth.Manager) {
	tokens := auth.NewManager("test-secret", "cvfast-test", time.Hour)
	clk := clock.Fixed{T: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	return usecase.NewAuthUsecase(repo, tokens, validator.New(), clk), tokens
}

func TestRegister(t *testing.T) {
	t.Run("Should reject duplicate email", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc, _ := newAuthUC(mockRepo)

		mockRepo.On("GetByEmail", mock.Anything, "taken@example.com").
			Return(&domain.User{ID: "u1", Email: "taken@example.com"}, nil)

		_, err := uc.Register(context.Background(), domain.RegisterInput{
			Name:     "Someone",
			Email:    "Taken@Example.com",
			Password: "supersecret",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should store bcrypt hash, never the password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc, tokens := newAuthUC(mockRepo)

		mockRepo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, nil)

		var stored *domain.User
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
			Return(nil).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*domain.User)
			})

		result, err := uc.Register(context.Background(), domain.RegisterInput{
			Name:     "New User",
			Email:    "new@example.com",
			Password: "supersecret",
		})
		assert.NoError(t, err)
		assert.NotNil(t, stored)
		assert.NotEqual(t, "supersecret", stored.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("supersecret")))

		claims, err := tokens.Verify(result.Token)
		assert.NoError(t, err)
		assert.Equal(t, stored.ID, claims.Subject)
		assert.Equal(t, "new@example.com", claims.Email)
	})

	t.Run("Should reject invalid input", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc, _ := newAuthUC(mockRepo)

		_, err := uc.Register(context.Background(), domain.RegisterInput{
			Name:     "X",
			Email:    "not-an-email",
			Password: "short",
		})
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("rightpass"), bcrypt.MinCost)
	known := &domain.User{ID: "u1", Email: "user@example.com", PasswordHash: string(hash)}

	t.Run("Should use identical error for unknown email and wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc, _ := newAuthUC(mockRepo)

		mockRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)
		mockRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(known, nil)

		_, errUnknown := uc.Login(context.Background(), domain.LoginInput{Email: "nobody@example.com", Password: "whatever1"})
		_, errWrongPass := uc.Login(context.Background(), domain.LoginInput{Email: "user@example.com", Password: "wrongpass"})

		assert.Error(t, errUnknown)
		assert.Error(t, errWrongPass)
		assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
	})

	t.Run("Should issue verifiable token on success", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc, tokens := newAuthUC(mockRepo)

		mockRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(known, nil)

		result, err := uc.Login(context.Background(), domain.LoginInput{Email: "User@Example.com", Password: "rightpass"})
		assert.NoError(t, err)

		claims, err := tokens.Verify(result.Token)
		assert.NoError(t, err)
		assert.Equal(t, "u1", claims.Subject)
	})
}

func TestGetCurrentUser(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc, _ := newAuthUC(mockRepo)

	mockRepo.On("GetByID", mock.Anything, "missing").Return(nil, nil)

	_, err := uc.GetCurrentUser(context.Background(), "missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "User not found")
}
