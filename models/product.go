package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name      string  `gorm:"not null"`
	Category  string  `gorm:"default:'General'"`
	Stock     int     `gorm:"default:0"`
	MinStock  int     `gorm:"default:5"`
	SellPrice float64 `gorm:"type:decimal(10,2);not null"`
	Weight    float64 `gorm:"type:decimal(10,3)"` // kilograms

	BuyDate        *time.Time
	ExpirationDate *time.Time

	Providers []Provider `gorm:"many2many:product_providers"`

	IsActive bool `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
