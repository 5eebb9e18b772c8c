package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domain "jobboard-api/internal/domain/user"
	"jobboard-api/internal/infrastructure/jwt"
)

func TestUserService_CreateUser(t *testing.T) {
	var captured domain.User
	repo := &FakeUserRepo{
		CreateUserFunc: func(ctx context.Context, req domain.User) (*domain.User, error) {
			captured = req
			req.UUID = uuid.New()
			return &req, nil
		},
	}
	us := &UserService{userRepository: repo, mCounter: testCounter()}

	u, err := us.CreateUser(context.Background(), domain.User{
		Email: "jane.doe@example.com",
		Name:  "Jane",
	}, "s3cret-pass")
	require.NoError(t, err)

	// role defaults, password is stored as a bcrypt hash
	assert.Equal(t, "talent", u.Role)
	require.NotNil(t, captured.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*captured.PasswordHash), []byte("s3cret-pass")))
}

func TestUserService_CreateUser_WeakPassword(t *testing.T) {
	us := &UserService{userRepository: &FakeUserRepo{}, mCounter: testCounter()}

	_, err := us.CreateUser(context.Background(), domain.User{Email: "a@b.c"}, "short")
	require.ErrorIs(t, err, ErrWeakPassword)
}

func TestAuthService_GenerateToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	hashStr := string(hash)

	u := &domain.User{
		UUID:         uuid.New(),
		Role:         "talent",
		PasswordHash: &hashStr,
	}

	j := jwt.New("test-secret")
	as := &AuthService{jwtService: j}

	tok, err := as.GenerateToken(u, "s3cret-pass")
	require.NoError(t, err)

	claims, err := j.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, u.UUID.String(), claims.UserID)
	assert.Equal(t, "talent", claims.Role)
}

func TestAuthService_GenerateToken_Invalid(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	hashStr := string(hash)

	as := &AuthService{jwtService: jwt.New("test-secret")}

	// wrong password
	_, err = as.GenerateToken(&domain.User{PasswordHash: &hashStr}, "wrong-pass")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// no password hash at all
	_, err = as.GenerateToken(&domain.User{}, "whatever")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
