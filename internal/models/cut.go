package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cut is a canonical meat cut name (e.g. "vacío", "asado de tira").
// Names are deduplicated case-insensitively at write time; the vocabulary
// grows via get-or-create, never via direct inserts.
type Cut struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"not null" json:"name"`
	// NameLower backs the case-insensitive uniqueness of Name. SQL LOWER()
	// only folds ASCII on sqlite, so the folding happens in Go.
	NameLower string    `gorm:"uniqueIndex;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Cut) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.NameLower = strings.ToLower(c.Name)
	return nil
}
