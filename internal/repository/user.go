package repository

import (
	"errors"
	"strings"

	"github.com/billfold/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type users struct {
	db *gorm.DB
}

// NewUserRepository returns a UserRepository backed by db.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &users{db: db}
}

func (r *users) Save(u *models.User) bool {
	var err error
	if u.ID == 0 {
		err = r.db.Create(u).Error
	} else {
		err = r.db.Save(u).Error
	}

	if err != nil {
		log.Error().Err(err).Int64("id", u.ID).Msg("saving user failed")
		return false
	}

	return true
}

func (r *users) FindByID(id int64) (models.User, bool) {
	if id <= 0 {
		return models.User{}, false
	}

	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if !errors.Is(err, models.ErrResourceNotFound) {
			log.Error().Err(err).Int64("id", id).Msg("loading user failed")
		}
		return models.User{}, false
	}

	return user, true
}

func (r *users) QueryByPhone(phone string) (models.User, bool) {
	if phone == "" {
		return models.User{}, false
	}

	var user models.User
	err := r.db.Where(&models.User{Phone: phone}).First(&user).Error
	if err != nil {
		if !errors.Is(err, models.ErrResourceNotFound) {
			log.Error().Err(err).Str("phone", phone).Msg("loading user by phone failed")
		}
		return models.User{}, false
	}

	return user, true
}

func (r *users) QueryByPhonePartial(partial string) []models.User {
	if partial == "" {
		return []models.User{}
	}

	// The partial is a literal substring, LIKE metacharacters in it
	// must not act as wildcards
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(partial)

	var matches []models.User
	err := r.db.Where(`phone LIKE ? ESCAPE '\'`, "%"+escaped+"%").Find(&matches).Error
	if err != nil {
		log.Error().Err(err).Str("partial", partial).Msg("matching users by phone failed")
		return []models.User{}
	}

	return matches
}

func (r *users) SetBalanceByPhone(phone string, balance decimal.Decimal) bool {
	user, ok := r.QueryByPhone(phone)
	if !ok {
		return false
	}

	user.Balance = balance
	return r.Save(&user)
}
