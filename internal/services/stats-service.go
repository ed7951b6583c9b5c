package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/franciscocavallaro/asado-counter/internal/models"
	"github.com/franciscocavallaro/asado-counter/internal/stats"
)

// StatsService produces the yearly Wrapped summary
type StatsService interface {
	// GetWrapped aggregates all asados whose date falls within the given
	// calendar year, boundaries inclusive
	GetWrapped(year int) (stats.Wrapped, error)
}

type statsService struct {
	db *gorm.DB
}

// NewStatsService creates a new instance of StatsService
func NewStatsService(db *gorm.DB) StatsService {
	return &statsService{db: db}
}

func (s *statsService) GetWrapped(year int) (stats.Wrapped, error) {
	// Dates are stored as YYYY-MM-DD with no timezone, so an inclusive
	// string range covers the calendar year exactly
	start := fmt.Sprintf("%04d-01-01", year)
	end := fmt.Sprintf("%04d-12-31", year)

	var asados []models.Asado
	err := s.db.
		Preload("Cuts.Cut").
		Preload("Guests.Guest").
		Where("date >= ? AND date <= ?", start, end).
		Order("date").
		Find(&asados).Error
	if err != nil {
		return stats.Wrapped{}, err
	}

	return stats.ComputeYearly(asados, year), nil
}
