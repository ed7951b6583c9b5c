package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/franciscocavallaro/asado-counter/internal/models"
)

// CatalogService provides the cut and guest vocabularies
type CatalogService interface {
	// ListCuts retrieves all cuts ordered by name
	ListCuts() ([]models.Cut, error)
	// ListGuests retrieves all guests ordered by name
	ListGuests() ([]models.Guest, error)
	// GetOrCreateCut returns the cut matching the trimmed name
	// case-insensitively, creating it if it does not exist
	GetOrCreateCut(name string) (models.Cut, error)
	// GetOrCreateGuest returns the guest matching the trimmed name
	// case-insensitively, creating it if it does not exist
	GetOrCreateGuest(name string) (models.Guest, error)
}

// catalogService is the implementation of the CatalogService interface
type catalogService struct {
	db *gorm.DB
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(db *gorm.DB) CatalogService {
	return &catalogService{db: db}
}

func (s *catalogService) ListCuts() ([]models.Cut, error) {
	var cuts []models.Cut
	if err := s.db.Order("name").Find(&cuts).Error; err != nil {
		return nil, err
	}
	return cuts, nil
}

func (s *catalogService) ListGuests() ([]models.Guest, error) {
	var guests []models.Guest
	if err := s.db.Order("name").Find(&guests).Error; err != nil {
		return nil, err
	}
	return guests, nil
}

func (s *catalogService) GetOrCreateCut(name string) (models.Cut, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return models.Cut{}, ErrEmptyName
	}

	var cut models.Cut
	err := s.db.Where("name_lower = ?", strings.ToLower(trimmed)).First(&cut).Error
	if err == nil {
		// Existing record wins: no rename, no merge
		return cut, nil
	}
	if err != gorm.ErrRecordNotFound {
		return models.Cut{}, err
	}

	// First insertion keeps the caller's casing
	cut = models.Cut{Name: trimmed}
	if err := s.db.Create(&cut).Error; err != nil {
		return models.Cut{}, err
	}
	return cut, nil
}

func (s *catalogService) GetOrCreateGuest(name string) (models.Guest, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return models.Guest{}, ErrEmptyName
	}

	var guest models.Guest
	err := s.db.Where("name_lower = ?", strings.ToLower(trimmed)).First(&guest).Error
	if err == nil {
		return guest, nil
	}
	if err != gorm.ErrRecordNotFound {
		return models.Guest{}, err
	}

	guest = models.Guest{Name: trimmed}
	if err := s.db.Create(&guest).Error; err != nil {
		return models.Guest{}, err
	}
	return guest, nil
}
