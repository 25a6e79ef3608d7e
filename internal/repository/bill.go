package repository

import (
	"errors"
	"time"

	"github.com/billfold/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type bills struct {
	db *gorm.DB
}

// NewBillRepository returns a BillRepository backed by db.
func NewBillRepository(db *gorm.DB) BillRepository {
	return &bills{db: db}
}

func (r *bills) Save(b *models.Bill) bool {
	var err error
	if b.ID == 0 {
		err = r.db.Create(b).Error
	} else {
		err = r.db.Save(b).Error
	}

	if err != nil {
		log.Error().Err(err).Int64("id", b.ID).Msg("saving bill failed")
		return false
	}

	return true
}

func (r *bills) FindByID(id int64) (models.Bill, bool) {
	if id <= 0 {
		return models.Bill{}, false
	}

	var bill models.Bill
	err := r.db.First(&bill, id).Error
	if err != nil {
		if !errors.Is(err, models.ErrResourceNotFound) {
			log.Error().Err(err).Int64("id", id).Msg("loading bill failed")
		}
		return models.Bill{}, false
	}

	// Resolve the event snapshot. A dangling event id leaves the zero value
	// rather than failing the lookup.
	if bill.EventID > 0 {
		var event models.Event
		if err := r.db.First(&event, bill.EventID).Error; err == nil {
			bill.Event = event
		}
	}

	// The newest annotation row is the live one.
	if bill.HasAnnotation {
		var annotation models.Annotation
		err := r.db.
			Where(&models.Annotation{BillID: bill.ID}).
			Order("created_at DESC, id DESC").
			First(&annotation).Error
		if err == nil {
			bill.Annotation = annotation
		}
	}

	return bill, true
}

func (r *bills) QueryByOwnerAndEvent(ownerID, eventID int64) []models.Bill {
	return r.find(r.db.Where("owner_id = ? AND event_id = ?", ownerID, eventID))
}

func (r *bills) QueryByEventName(name string) []models.Bill {
	if name == "" {
		return []models.Bill{}
	}

	var event models.Event
	err := r.db.Where(&models.Event{Name: name}).First(&event).Error
	if err != nil {
		if !errors.Is(err, models.ErrResourceNotFound) {
			log.Error().Err(err).Str("name", name).Msg("resolving event by name failed")
		}
		return []models.Bill{}
	}

	return r.find(r.db.Where("event_id = ?", event.ID))
}

func (r *bills) QueryByTime(ownerID int64, from, to time.Time) []models.Bill {
	return r.find(r.db.Where(
		"owner_id = ? AND created_at >= ? AND created_at <= ?",
		ownerID, from.In(time.UTC), to.In(time.UTC),
	))
}

func (r *bills) QueryByTimeRange(from, to time.Time) []models.Bill {
	return r.find(r.db.Where(
		"created_at >= ? AND created_at <= ?",
		from.In(time.UTC), to.In(time.UTC),
	))
}

func (r *bills) QueryByTimeInOrder(from, to time.Time) []models.Bill {
	return r.find(r.db.
		Where("created_at >= ? AND created_at <= ?", from.In(time.UTC), to.In(time.UTC)).
		Order("created_at ASC"))
}

func (r *bills) QueryByTimeAndEventInOrder(from, to time.Time) []models.Bill {
	return r.find(r.db.
		Where("created_at >= ? AND created_at <= ?", from.In(time.UTC), to.In(time.UTC)).
		Order("created_at ASC, event_id ASC"))
}

func (r *bills) QueryByPhone(phone string) []models.Bill {
	if phone == "" {
		return []models.Bill{}
	}

	var owner models.User
	err := r.db.Where(&models.User{Phone: phone}).First(&owner).Error
	if err != nil {
		if !errors.Is(err, models.ErrResourceNotFound) {
			log.Error().Err(err).Str("phone", phone).Msg("resolving owner by phone failed")
		}
		return []models.Bill{}
	}

	return r.find(r.db.Where("owner_id = ?", owner.ID))
}

func (r *bills) SumByTime(from, to time.Time) decimal.Decimal {
	var sum decimal.NullDecimal

	err := r.db.Table("bills").
		Where("created_at >= ? AND created_at <= ?", from.In(time.UTC), to.In(time.UTC)).
		Select("SUM(amount)").
		Row().
		Scan(&sum)
	if err != nil {
		log.Error().Err(err).Msg("summing bills failed")
		return decimal.Zero
	}

	if !sum.Valid {
		return decimal.Zero
	}

	return sum.Decimal
}

func (r *bills) SaveAnnotated(b *models.Bill, a *models.Annotation) bool {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// The annotation row must be durable before the bill is flagged, so
		// a reader never observes HasAnnotation without the annotation.
		var err error
		if a.ID == 0 {
			err = tx.Create(a).Error
		} else {
			err = tx.Save(a).Error
		}
		if err != nil {
			return err
		}

		b.HasAnnotation = true
		b.Annotation = *a
		return tx.Save(b).Error
	})
	if err != nil {
		log.Error().Err(err).Int64("billId", b.ID).Msg("annotating bill failed")
		return false
	}

	return true
}

func (r *bills) Remove(id int64) bool {
	if id <= 0 {
		return true
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Annotations cascade with their bill.
		if err := tx.Where("bill_id = ?", id).Delete(&models.Annotation{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Bill{}, id).Error
	})
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("deleting bill failed")
		return false
	}

	return true
}

func (r *bills) find(query *gorm.DB) []models.Bill {
	var matches []models.Bill
	err := query.Find(&matches).Error
	if err != nil {
		log.Error().Err(err).Msg("querying bills failed")
		return []models.Bill{}
	}

	return matches
}
