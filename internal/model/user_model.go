package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:191" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:191" json:"email"`
	Password     string    `gorm:"size:191" json:"-"`
	Role         string    `gorm:"type:varchar(20)" json:"role"`
	ProfilePhoto string    `json:"profilePhoto"`
	Address      string    `json:"address"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) TableName() string {
	return "users"
}
