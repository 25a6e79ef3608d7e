package services

import (
	"github.com/billfold/backend/internal/models"
	"github.com/billfold/backend/internal/repository"
	"github.com/shopspring/decimal"
)

// UserService exposes user lookups and the balance write.
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetUser(id int64) (models.User, bool) {
	if id <= 0 {
		return models.User{}, false
	}

	return s.users.FindByID(id)
}

// QueryUserByPhone matches users whose phone number contains partial.
func (s *UserService) QueryUserByPhone(partial string) []models.User {
	if partial == "" {
		return []models.User{}
	}

	return s.users.QueryByPhonePartial(partial)
}

// SetBalance overwrites the balance of the user, leaving every other field
// untouched. Negative amounts are rejected before any storage call.
func (s *UserService) SetBalance(id int64, amount decimal.Decimal) bool {
	if id <= 0 || amount.IsNegative() {
		return false
	}

	user, ok := s.users.FindByID(id)
	if !ok {
		return false
	}

	user.Balance = amount
	return s.users.Save(&user)
}
