package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/yohanvishvajith/sintravels-sub000/internal/model"
)

// SafeUser is the client-facing user shape. The password hash has no
// field here at all, so it cannot leak through serialization.
type SafeUser struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	ProfilePhoto string    `json:"profilePhoto,omitempty"`
	Address      string    `json:"address,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewSafeUser(u *model.User) SafeUser {
	return SafeUser{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		Role:         u.Role,
		ProfilePhoto: u.ProfilePhoto,
		Address:      u.Address,
		CreatedAt:    u.CreatedAt,
	}
}
