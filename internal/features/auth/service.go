package auth

import (
	"context"
	"errors"

	common_models "stitchmes/internal/common/models"
	"stitchmes/internal/features/user"
	"stitchmes/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// ErrBadCredentials covers both unknown employees and wrong passwords so the
// login form can't be used to probe for valid employee numbers
var ErrBadCredentials = errors.New("invalid employee number or password")

type AuthService interface {
	Login(ctx context.Context, employeeNumber int, password string) (string, *user.Employee, error)
}

type AuthServiceImpl struct {
	UserRepo user.UserRepository
}

func NewAuthService(userRepo user.UserRepository) AuthService {
	return &AuthServiceImpl{UserRepo: userRepo}
}

func (s *AuthServiceImpl) Login(ctx context.Context, employeeNumber int, password string) (string, *user.Employee, error) {
	employee, err := s.UserRepo.GetByEmployeeNumber(ctx, employeeNumber)
	if errors.Is(err, common_models.ErrNotFound) {
		return "", nil, ErrBadCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if !employee.Active {
		return "", nil, ErrBadCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrBadCredentials
	}

	token, err := utils.GenerateToken(employee.EmployeeNumber, employee.Name, employee.Role)
	if err != nil {
		return "", nil, err
	}

	return token, employee, nil
}
