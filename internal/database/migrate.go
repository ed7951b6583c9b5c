package database

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/franciscocavallaro/asado-counter/internal/models"
)

// Migrate creates or updates the schema for all domain models
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Cut{},
		&models.Guest{},
		&models.Asado{},
		&models.AsadoCut{},
		&models.AsadoGuest{},
		&models.BarcodeMapping{},
	)
}

// SeedBarcodes loads a handful of barcode mappings when the table is
// empty. Real mappings are registered with scripts/import_barcodes.go;
// these just make a fresh dev database scannable.
func SeedBarcodes(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.BarcodeMapping{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	brand := "La Anónima"
	mappings := []models.BarcodeMapping{
		{Barcode: "7790000000017", CutName: "vacío", DefaultWeightKg: decimal.NewFromFloat(1.2), Brand: &brand},
		{Barcode: "7790000000024", CutName: "asado de tira", DefaultWeightKg: decimal.NewFromFloat(1.5), Brand: &brand},
		{Barcode: "7790000000031", CutName: "chorizo", DefaultWeightKg: decimal.NewFromFloat(0.5)},
	}
	for _, mapping := range mappings {
		if err := db.Create(&mapping).Error; err != nil {
			return err
		}
	}

	log.WithField("mappings", len(mappings)).Info("Seeded barcode mappings")
	return nil
}
