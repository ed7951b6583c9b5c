package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// BarcodeMapping mirrors the application model so this script stays
// standalone, the same way the app is not needed to populate the table.
type BarcodeMapping struct {
	Barcode         string          `gorm:"primaryKey"`
	CutName         string          `gorm:"not null"`
	DefaultWeightKg decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Brand           *string
	CreatedAt       time.Time
}

func (BarcodeMapping) TableName() string {
	return "barcode_mappings"
}

// Imports barcode mappings from a CSV with columns:
// barcode,cut_name,default_weight_kg,brand (brand may be empty).
// Existing barcodes are overwritten.
//
// Usage: go run scripts/import_barcodes.go -db asados.sqlite -csv barcodes.csv
func main() {
	dbPath := flag.String("db", "asados.sqlite", "Path to the sqlite database")
	csvPath := flag.String("csv", "", "Path to the CSV file to import")
	flag.Parse()

	if *csvPath == "" {
		log.Fatal("missing -csv flag")
	}

	db, err := gorm.Open(sqlite.Open(*dbPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&BarcodeMapping{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	file, err := os.Open(*csvPath)
	if err != nil {
		log.Fatalf("failed to open CSV: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	imported := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("failed to read CSV: %v", err)
		}
		if len(record) < 3 {
			log.Fatalf("row %d: expected at least 3 columns, got %d", imported+1, len(record))
		}

		weight, err := decimal.NewFromString(record[2])
		if err != nil {
			log.Fatalf("row %d: invalid weight %q: %v", imported+1, record[2], err)
		}

		mapping := BarcodeMapping{
			Barcode:         record[0],
			CutName:         record[1],
			DefaultWeightKg: weight,
		}
		if len(record) > 3 && record[3] != "" {
			brand := record[3]
			mapping.Brand = &brand
		}

		if err := db.Save(&mapping).Error; err != nil {
			log.Fatalf("row %d: failed to save: %v", imported+1, err)
		}
		imported++
	}

	fmt.Printf("Imported %d barcode mappings into %s\n", imported, *dbPath)
}
