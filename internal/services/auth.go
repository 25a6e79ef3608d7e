// Package services holds the domain services. They validate all input before
// any repository call and surface every failure as an absent, empty or false
// result — no error ever crosses the service boundary.
package services

import (
	"github.com/billfold/backend/internal/models"
	"github.com/billfold/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// AuthService owns registration and credential checks. Passwords are stored
// as bcrypt hashes; the raw credential never reaches the repository.
type AuthService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Login returns the user registered under the phone number when the
// password verifies against the stored hash.
func (s *AuthService) Login(phone, password string) (models.User, bool) {
	user, ok := s.users.QueryByPhone(phone)
	if !ok {
		return models.User{}, false
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return models.User{}, false
	}

	return user, true
}

// Register creates an account with role "user" and a zero balance. The phone
// number must not be registered yet.
func (s *AuthService) Register(phone, username, password string) (models.User, bool) {
	if phone == "" || username == "" || password == "" {
		return models.User{}, false
	}

	if _, ok := s.users.QueryByPhone(phone); ok {
		return models.User{}, false
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("hashing password failed")
		return models.User{}, false
	}

	user := models.User{
		Phone:    phone,
		Username: username,
		Password: string(hash),
		Role:     models.RoleUser,
		Balance:  decimal.Zero,
	}
	if !s.users.Save(&user) {
		return models.User{}, false
	}

	return user, true
}

// ResetPassword replaces the password after verifying the old one. The new
// password must be non-empty and differ from the old one.
func (s *AuthService) ResetPassword(userID int64, oldPwd, newPwd string) bool {
	if newPwd == "" || newPwd == oldPwd {
		return false
	}

	user, ok := s.users.FindByID(userID)
	if !ok {
		return false
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPwd)) != nil {
		return false
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPwd), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("hashing password failed")
		return false
	}

	user.Password = string(hash)
	return s.users.Save(&user)
}
