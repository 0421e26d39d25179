package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DebtStatusOpen = "open"
	DebtStatusPaid = "paid"
)

type Debt struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	ClientID uuid.UUID `gorm:"type:uuid;index;not null"`

	// Mount is the principal amount owed; payments are applied against it.
	Mount  float64 `gorm:"type:decimal(10,2);not null"`
	Status string  `gorm:"type:varchar(10);default:'open'"`

	Payments []Payment `gorm:"foreignKey:DebtID"`

	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time
}

func (d *Debt) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return
}

type Payment struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	DebtID uuid.UUID `gorm:"type:uuid;index;not null"`

	Amount      float64   `gorm:"type:decimal(10,2);not null"`
	PaymentDate time.Time `gorm:"not null"`

	CreatedAt time.Time
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
