package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BarcodeMapping maps a product barcode to a suggested cut entry.
// The table is read-only from the application's point of view; rows are
// loaded via seeding or the import script in scripts/.
type BarcodeMapping struct {
	Barcode         string          `gorm:"primaryKey" json:"barcode"`
	CutName         string          `gorm:"not null" json:"cut_name"`
	DefaultWeightKg decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"default_weight_kg"`
	Brand           *string         `json:"brand"`
	CreatedAt       time.Time       `json:"created_at"`
}
