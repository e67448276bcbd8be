package service

import (
	"context"
	"testing"

	"github.com/rahmedalmosd25-ux/eventhub/internal/domain"
	"github.com/rahmedalmosd25-ux/eventhub/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) (*mocks.MockUserRepo, *mocks.MockTokenIssuer, *AuthService) {
	t.Helper()
	userRepo := mocks.NewMockUserRepo(t)
	tokens := mocks.NewMockTokenIssuer(t)
	return userRepo, tokens, NewAuthService(userRepo, tokens)
}

func TestAuthService_SignUp_Success(t *testing.T) {
	userRepo, tokens, svc := newAuthService(t)

	var created *domain.User
	userRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, u *domain.User) error {
			created = u
			return nil
		})
	tokens.EXPECT().Issue(mock.Anything).Return("signed-token", nil)

	user, token, err := svc.SignUp(context.Background(), domain.SignUpInput{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "secret123",
		Phone:    "+10000000000",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NotEmpty(t, user.ID)
	require.NotNil(t, created)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")))
}

func TestAuthService_SignUp_MissingFields(t *testing.T) {
	_, _, svc := newAuthService(t)

	_, _, err := svc.SignUp(context.Background(), domain.SignUpInput{Email: "alice@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_SignUp_EmailTaken(t *testing.T) {
	userRepo, _, svc := newAuthService(t)

	userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, _, err := svc.SignUp(context.Background(), domain.SignUpInput{
		Email:    "taken@example.com",
		Name:     "Alice",
		Password: "secret123",
		Phone:    "+10000000000",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuthService_Login_Success(t *testing.T) {
	userRepo, tokens, svc := newAuthService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(&domain.User{
		ID:           "u1",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
	}, nil)
	tokens.EXPECT().Issue(mock.Anything).Return("signed-token", nil)

	user, token, err := svc.Login(context.Background(), "alice@example.com", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "signed-token", token)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	userRepo, _, svc := newAuthService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(&domain.User{
		PasswordHash: string(hash),
	}, nil)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	userRepo, _, svc := newAuthService(t)

	userRepo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "secret123")

	require.Error(t, err)
	// Unknown email must not be distinguishable from a wrong password.
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.NotErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	userRepo, _, svc := newAuthService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{
		ID:    "u1",
		Name:  "Alice",
		Phone: "+10000000000",
	}, nil)
	userRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	name := "Alice Cooper"
	user, err := svc.UpdateProfile(context.Background(), "u1", domain.UpdateProfileInput{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", user.Name)
	assert.Equal(t, "+10000000000", user.Phone) // untouched
}
