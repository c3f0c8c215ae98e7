package repository

import (
	"time"

	"github.com/yohanvishvajith/sintravels-sub000/internal/model"
	"gorm.io/gorm"
)

type VisitorRepository struct {
	db *gorm.DB
}

func NewVisitorRepository(db *gorm.DB) *VisitorRepository {
	return &VisitorRepository{db}
}

func (r *VisitorRepository) Create(v *model.Visitor) error {
	return r.db.Create(v).Error
}

func (r *VisitorRepository) CountAll() (int64, error) {
	var n int64
	err := r.db.Model(&model.Visitor{}).Count(&n).Error
	return n, err
}

func (r *VisitorRepository) CountSince(t time.Time) (int64, error) {
	var n int64
	err := r.db.Model(&model.Visitor{}).Where("created_at >= ?", t).Count(&n).Error
	return n, err
}
