package services

import (
	"time"

	"github.com/billfold/backend/internal/models"
	"github.com/billfold/backend/internal/repository"
	"github.com/shopspring/decimal"
)

// StatisticsService provides read-only aggregations over all bills.
type StatisticsService struct {
	bills repository.BillRepository
}

func NewStatisticsService(bills repository.BillRepository) *StatisticsService {
	return &StatisticsService{bills: bills}
}

// QueryByTimeInOrder returns all bills in the inclusive range, ascending by
// creation time.
func (s *StatisticsService) QueryByTimeInOrder(from, to time.Time) []models.Bill {
	if from.After(to) {
		return []models.Bill{}
	}

	return s.bills.QueryByTimeInOrder(from, to)
}

// QueryByTimeAndEventInOrder returns all bills in the inclusive range,
// ascending by creation time with ties broken by ascending event id.
func (s *StatisticsService) QueryByTimeAndEventInOrder(from, to time.Time) []models.Bill {
	if from.After(to) {
		return []models.Bill{}
	}

	return s.bills.QueryByTimeAndEventInOrder(from, to)
}

// SumByTime returns the total amount of all bills in the inclusive range.
func (s *StatisticsService) SumByTime(from, to time.Time) decimal.Decimal {
	if from.After(to) {
		return decimal.Zero
	}

	return s.bills.SumByTime(from, to)
}
