package repository

import (
	"errors"

	"github.com/billfold/backend/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type annotations struct {
	db *gorm.DB
}

// NewAnnotationRepository returns an AnnotationRepository backed by db.
func NewAnnotationRepository(db *gorm.DB) AnnotationRepository {
	return &annotations{db: db}
}

func (r *annotations) Save(a *models.Annotation) bool {
	var err error
	if a.ID == 0 {
		err = r.db.Create(a).Error
	} else {
		err = r.db.Save(a).Error
	}

	if err != nil {
		log.Error().Err(err).Int64("id", a.ID).Msg("saving annotation failed")
		return false
	}

	return true
}

func (r *annotations) FindByID(id int64) (models.Annotation, bool) {
	if id <= 0 {
		return models.Annotation{}, false
	}

	var annotation models.Annotation
	err := r.db.First(&annotation, id).Error
	if err != nil {
		if !errors.Is(err, models.ErrResourceNotFound) {
			log.Error().Err(err).Int64("id", id).Msg("loading annotation failed")
		}
		return models.Annotation{}, false
	}

	return annotation, true
}

func (r *annotations) FindByBillID(billID int64) []models.Annotation {
	if billID <= 0 {
		return []models.Annotation{}
	}

	var history []models.Annotation
	err := r.db.
		Where(&models.Annotation{BillID: billID}).
		Order("created_at DESC, id DESC").
		Find(&history).Error
	if err != nil {
		log.Error().Err(err).Int64("billId", billID).Msg("loading annotations for bill failed")
		return []models.Annotation{}
	}

	return history
}

func (r *annotations) FindByAuthorID(authorID int64) []models.Annotation {
	if authorID <= 0 {
		return []models.Annotation{}
	}

	var history []models.Annotation
	err := r.db.
		Where(&models.Annotation{AuthorID: authorID}).
		Order("created_at DESC, id DESC").
		Find(&history).Error
	if err != nil {
		log.Error().Err(err).Int64("authorId", authorID).Msg("loading annotations by author failed")
		return []models.Annotation{}
	}

	return history
}

func (r *annotations) RemoveByBillID(billID int64) bool {
	if billID <= 0 {
		return true
	}

	err := r.db.Where("bill_id = ?", billID).Delete(&models.Annotation{}).Error
	if err != nil {
		log.Error().Err(err).Int64("billId", billID).Msg("deleting annotations for bill failed")
		return false
	}

	return true
}
