package service

import (
	"errors"

	"go-portfolio-api/internal/model"
	"go-portfolio-api/internal/repository"
	"go-portfolio-api/pkg/jwt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
}

type LoginResponse struct {
	Token string            `json:"token"`
	User  model.UserSummary `json:"user"`
	Role  *model.Role       `json:"role,omitempty"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Login authenticates a user with a stored password hash and issues a JWT.
// Guest accounts created through suggestion submissions have no hash and are
// rejected with the same error as a wrong password.
func (s *authService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.Name, user.RoleID)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token: token,
		User:  user.ToSummary(),
		Role:  user.Role,
	}, nil
}
