package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Provider deletes are permanent so the CUIT slot in idx_user_cuit frees up
// immediately for a re-registration.
type Provider struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_cuit,priority:1"`

	CompanyName string `gorm:"not null"`
	CUIT        string `gorm:"column:cuit;not null;uniqueIndex:idx_user_cuit,priority:2"`
	Address     string
	Phone       string `gorm:"not null"`
	Email       string `gorm:"not null"`
	Category    string `gorm:"not null"`
	IsActive    bool   `gorm:"default:true"`

	Products []Product `gorm:"many2many:product_providers"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *Provider) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
