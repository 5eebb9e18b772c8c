package services

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"jobboard-api/internal/application/ports"
	domain "jobboard-api/internal/domain/user"
)

var ErrWeakPassword = errors.New("password is too short")

const minPasswordLen = 8

type UserService struct {
	userRepository domain.Repository
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mCounter:       mCounter,
	}
}

func (us *UserService) FindUserByID(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	return us.userRepository.FetchUserByUUID(ctx, uuid)
}

func (us *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return us.userRepository.FetchUserByEmail(ctx, email)
}

func (us *UserService) CreateUser(ctx context.Context, u domain.User, password string) (*domain.User, error) {
	if len(password) < minPasswordLen {
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)
	u.PasswordHash = &hashStr
	if u.Role == "" {
		u.Role = "talent"
	}

	uRet, err := us.userRepository.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	us.mCounter.WithLabelValues("user_created_total").Inc()

	return uRet, nil
}
