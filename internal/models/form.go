package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CutInput is one cut line of an asado form. WeightKg is kept as the raw
// user input so both "1.5" and "1,5" are accepted.
type CutInput struct {
	Name     string `json:"name" validate:"required"`
	WeightKg string `json:"weight_kg" validate:"required"`
}

// ParseWeight parses the raw weight input, accepting comma or point as
// the decimal separator.
func (ci CutInput) ParseWeight() (decimal.Decimal, error) {
	raw := strings.ReplaceAll(strings.TrimSpace(ci.WeightKg), ",", ".")
	return decimal.NewFromString(raw)
}

// GuestInput is one guest line of an asado form
type GuestInput struct {
	Name string `json:"name" validate:"required"`
}

// AsadoForm is the serializable draft an asado is created or updated from.
// It is passed by value; validation and payload building never mutate it.
type AsadoForm struct {
	Date   string       `json:"date" validate:"required,datetime=2006-01-02"`
	Title  string       `json:"title"`
	Rating int          `json:"rating" validate:"required,min=1,max=10"`
	Cuts   []CutInput   `json:"cuts" validate:"required,min=1,dive"`
	Guests []GuestInput `json:"guests" validate:"dive"`
}

// Validate checks the draft and returns one message per offending field.
// An empty map means the form can be submitted.
func (f AsadoForm) Validate() map[string]string {
	errs := make(map[string]string)

	if _, err := time.Parse("2006-01-02", f.Date); err != nil {
		errs["date"] = "date must be in YYYY-MM-DD format"
	}
	if f.Rating < 1 || f.Rating > 10 {
		errs["rating"] = "rating must be between 1 and 10"
	}
	if len(f.Cuts) == 0 {
		errs["cuts"] = "at least one cut is required"
	}
	for _, cut := range f.Cuts {
		if strings.TrimSpace(cut.Name) == "" {
			errs["cuts"] = "every cut needs a name"
			break
		}
		weight, err := cut.ParseWeight()
		if err != nil || !weight.IsPositive() {
			errs["cuts"] = "every cut needs a weight greater than zero"
			break
		}
	}
	for _, guest := range f.Guests {
		if strings.TrimSpace(guest.Name) == "" {
			errs["guests"] = "guest names cannot be empty"
			break
		}
	}

	return errs
}

// TitleOrNil returns the trimmed title, or nil when it is blank
func (f AsadoForm) TitleOrNil() *string {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return nil
	}
	return &title
}
