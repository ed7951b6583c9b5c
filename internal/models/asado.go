package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Asado represents a single barbecue event
type Asado struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Date      string    `gorm:"type:date;index;not null" json:"date"`
	Title     *string   `json:"title"`
	Rating    int       `gorm:"not null" json:"rating"`
	CreatedAt time.Time `json:"created_at"`

	Cuts   []AsadoCut   `gorm:"foreignKey:AsadoID;constraint:OnDelete:CASCADE" json:"asado_cuts"`
	Guests []AsadoGuest `gorm:"foreignKey:AsadoID;constraint:OnDelete:CASCADE" json:"asado_guests"`
}

func (a *Asado) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// AsadoCut links an asado to a cut with the weight bought for that event
type AsadoCut struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	AsadoID   uuid.UUID       `gorm:"type:uuid;index;not null" json:"asado_id"`
	CutID     uuid.UUID       `gorm:"type:uuid;index;not null" json:"cut_id"`
	WeightKg  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"weight_kg"`
	CreatedAt time.Time       `json:"created_at"`

	Cut *Cut `gorm:"foreignKey:CutID" json:"cut,omitempty"`
}

func (ac *AsadoCut) BeforeCreate(_ *gorm.DB) error {
	if ac.ID == uuid.Nil {
		ac.ID = uuid.New()
	}
	return nil
}

// AsadoGuest links an asado to a guest who attended it
type AsadoGuest struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AsadoID   uuid.UUID `gorm:"type:uuid;index;not null" json:"asado_id"`
	GuestID   uuid.UUID `gorm:"type:uuid;index;not null" json:"guest_id"`
	CreatedAt time.Time `json:"created_at"`

	Guest *Guest `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
}

func (ag *AsadoGuest) BeforeCreate(_ *gorm.DB) error {
	if ag.ID == uuid.Nil {
		ag.ID = uuid.New()
	}
	return nil
}
