package repository

import (
	"github.com/yohanvishvajith/sintravels-sub000/internal/model"
	"gorm.io/gorm"
)

// ReferenceRepository covers the three dropdown entities. They share
// the same list/create/update/delete shape.
type ReferenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) *ReferenceRepository {
	return &ReferenceRepository{db}
}

func (r *ReferenceRepository) ListCountries() ([]model.Country, error) {
	var out []model.Country
	err := r.db.Order("name ASC").Find(&out).Error
	return out, err
}

func (r *ReferenceRepository) SaveCountry(c *model.Country) error {
	return r.db.Save(c).Error
}

func (r *ReferenceRepository) DeleteCountry(id string) error {
	return r.db.Delete(&model.Country{}, "id = ?", id).Error
}

func (r *ReferenceRepository) CountCountries() (int64, error) {
	var n int64
	err := r.db.Model(&model.Country{}).Count(&n).Error
	return n, err
}

func (r *ReferenceRepository) ListIndustries() ([]model.Industry, error) {
	var out []model.Industry
	err := r.db.Order("name ASC").Find(&out).Error
	return out, err
}

func (r *ReferenceRepository) SaveIndustry(i *model.Industry) error {
	return r.db.Save(i).Error
}

func (r *ReferenceRepository) DeleteIndustry(id string) error {
	return r.db.Delete(&model.Industry{}, "id = ?", id).Error
}

func (r *ReferenceRepository) CountIndustries() (int64, error) {
	var n int64
	err := r.db.Model(&model.Industry{}).Count(&n).Error
	return n, err
}

func (r *ReferenceRepository) ListBenefits() ([]model.Benefit, error) {
	var out []model.Benefit
	err := r.db.Order("name ASC").Find(&out).Error
	return out, err
}

func (r *ReferenceRepository) SaveBenefit(b *model.Benefit) error {
	return r.db.Save(b).Error
}

func (r *ReferenceRepository) DeleteBenefit(id string) error {
	return r.db.Delete(&model.Benefit{}, "id = ?", id).Error
}

func (r *ReferenceRepository) CountBenefits() (int64, error) {
	var n int64
	err := r.db.Model(&model.Benefit{}).Count(&n).Error
	return n, err
}
