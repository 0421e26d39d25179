package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationTypeStock = "STOCK"
	NotificationTypeDebt  = "DEBT"
)

// Notification rows are created server-side by the scheduler; clients
// may only flip the Read flag.
type Notification struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Description string `gorm:"type:text;not null"`
	Type        string `gorm:"type:varchar(10);not null"` // STOCK or DEBT
	Read        bool   `gorm:"default:false"`

	// Optional back-references used to avoid duplicate unread alerts
	ProductID *uuid.UUID `gorm:"type:uuid;index"`
	ClientID  *uuid.UUID `gorm:"type:uuid;index"`

	CreatedAt time.Time
}

func (n *Notification) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return
}
