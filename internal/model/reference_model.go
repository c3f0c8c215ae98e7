package model

import "github.com/google/uuid"

type Country struct {
	ID      uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name    string    `gorm:"size:191" json:"name"`
	FlagImg string    `json:"flagimg"`
}

func (c *Country) TableName() string {
	return "countries"
}

type Industry struct {
	ID   uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name string    `gorm:"size:191" json:"name"`
}

func (i *Industry) TableName() string {
	return "industries"
}

type Benefit struct {
	ID   uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name string    `gorm:"size:191" json:"name"`
}

func (b *Benefit) TableName() string {
	return "benefits"
}
