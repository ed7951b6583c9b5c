package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/franciscocavallaro/asado-counter/internal/models"
)

// BarcodeService resolves scanned barcodes to product suggestions
type BarcodeService interface {
	// LookupBarcode returns the mapping for an exact barcode match.
	// A miss returns (nil, nil): no suggestion is the expected common
	// case for unregistered barcodes, not a failure.
	LookupBarcode(code string) (*models.BarcodeMapping, error)
}

type barcodeService struct {
	db *gorm.DB
}

// NewBarcodeService creates a new instance of BarcodeService
func NewBarcodeService(db *gorm.DB) BarcodeService {
	return &barcodeService{db: db}
}

func (s *barcodeService) LookupBarcode(code string) (*models.BarcodeMapping, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return nil, nil
	}

	var mapping models.BarcodeMapping
	err := s.db.Where("barcode = ?", trimmed).First(&mapping).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mapping, nil
}
