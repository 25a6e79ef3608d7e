package services

import (
	"strings"
	"time"

	"github.com/billfold/backend/internal/models"
	"github.com/billfold/backend/internal/repository"
)

// BillService manages spending records and their annotations.
type BillService struct {
	bills  repository.BillRepository
	events repository.EventRepository
}

func NewBillService(bills repository.BillRepository, events repository.EventRepository) *BillService {
	return &BillService{bills: bills, events: events}
}

// Create persists a new bill for the owner. The owner id is stamped over
// whatever the caller put into data, and a referenced event that exists but
// is frozen rejects the bill. An event id that resolves to no row is
// tolerated, matching the read path's empty embed.
func (s *BillService) Create(ownerID int64, data models.Bill) (models.Bill, bool) {
	if ownerID <= 0 || !data.Amount.IsPositive() {
		return models.Bill{}, false
	}

	if data.EventID > 0 {
		if event, ok := s.events.FindByID(data.EventID); ok && event.Status == models.EventFrozen {
			return models.Bill{}, false
		}
	}

	data.ID = 0
	data.OwnerID = ownerID
	if !s.bills.Save(&data) {
		return models.Bill{}, false
	}

	return data, true
}

// QueryByTime returns the owner's bills in the inclusive range [from, to].
func (s *BillService) QueryByTime(ownerID int64, from, to time.Time) []models.Bill {
	if ownerID <= 0 || from.After(to) {
		return []models.Bill{}
	}

	return s.bills.QueryByTime(ownerID, from, to)
}

// QueryByTimeRange returns all bills in the inclusive range, regardless of
// owner. Callers are expected to restrict this to administrators.
func (s *BillService) QueryByTimeRange(from, to time.Time) []models.Bill {
	if from.After(to) {
		return []models.Bill{}
	}

	return s.bills.QueryByTimeRange(from, to)
}

func (s *BillService) QueryByEvent(ownerID, eventID int64) []models.Bill {
	if ownerID <= 0 || eventID <= 0 {
		return []models.Bill{}
	}

	return s.bills.QueryByOwnerAndEvent(ownerID, eventID)
}

// QueryByEventName returns all bills tagged with the named event. Callers
// are expected to restrict this to administrators.
func (s *BillService) QueryByEventName(name string) []models.Bill {
	if name == "" {
		return []models.Bill{}
	}

	return s.bills.QueryByEventName(name)
}

// QueryByPhone returns all bills owned by the user registered under phone.
// Callers are expected to restrict this to administrators.
func (s *BillService) QueryByPhone(phone string) []models.Bill {
	if phone == "" {
		return []models.Bill{}
	}

	return s.bills.QueryByPhone(phone)
}

// Edit replaces the bill's description, amount and event association. The
// id, owner, creation timestamp and annotation flag are immutable: whatever
// the caller put into updates for those fields is discarded in favor of the
// stored row.
func (s *BillService) Edit(id int64, updates models.Bill) bool {
	if id <= 0 {
		return false
	}

	existing, ok := s.bills.FindByID(id)
	if !ok {
		return false
	}

	updates.ID = existing.ID
	updates.OwnerID = existing.OwnerID
	updates.CreatedAt = existing.CreatedAt
	updates.HasAnnotation = existing.HasAnnotation
	return s.bills.Save(&updates)
}

// Delete removes the bill and its annotations. Existence is checked first
// even though the repository remove is itself idempotent.
func (s *BillService) Delete(id int64) bool {
	if id <= 0 {
		return false
	}

	if _, ok := s.bills.FindByID(id); !ok {
		return false
	}

	return s.bills.Remove(id)
}

// Annotate attaches a note to the bill. Empty content is rejected before
// anything is written; the annotation and the flagged bill are persisted in
// a single transaction, annotation first.
func (s *BillService) Annotate(id int64, annotation models.Annotation) bool {
	if id <= 0 {
		return false
	}

	bill, ok := s.bills.FindByID(id)
	if !ok {
		return false
	}

	if strings.TrimSpace(annotation.Content) == "" {
		return false
	}

	annotation.BillID = bill.ID
	return s.bills.SaveAnnotated(&bill, &annotation)
}
