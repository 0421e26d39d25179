package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client rows are removed for good on delete; deactivation is the IsActive
// flag, not a tombstone.
type Client struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	Document  string `gorm:"index"`
	Phone     string `gorm:"not null"`
	Address   string
	Email     string `gorm:"not null"`
	Notes     string
	IsActive  bool `gorm:"default:true"`

	Debts []Debt `gorm:"foreignKey:ClientID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Client) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
