package model

import (
	"time"

	"github.com/google/uuid"
)

// Visitor rows are append-only; aggregation happens at read time.
type Visitor struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	IPAddress string    `gorm:"size:64" json:"ipAddress"`
	UserAgent string    `json:"userAgent"`
	Page      string    `json:"page"`
	Referrer  string    `json:"referrer"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (v *Visitor) TableName() string {
	return "visitors"
}
