package repository

import (
	"github.com/yohanvishvajith/sintravels-sub000/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ApplicantRepository struct {
	db *gorm.DB
}

func NewApplicantRepository(db *gorm.DB) *ApplicantRepository {
	return &ApplicantRepository{db}
}

// CreateIfAbsent inserts the applicant unless a row for the same
// (user, job) pair already exists. The unique index plus ON CONFLICT DO
// NOTHING makes the duplicate-submit path atomic; created reports
// whether a row was actually written.
func (r *ApplicantRepository) CreateIfAbsent(a *model.Applicant) (created bool, err error) {
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(a)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *ApplicantRepository) HasApplied(userID, jobID string) (bool, error) {
	var n int64
	err := r.db.Model(&model.Applicant{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&n).Error
	return n > 0, err
}

func (r *ApplicantRepository) List() ([]model.Applicant, error) {
	var applicants []model.Applicant
	err := r.db.Order("created_at DESC").Find(&applicants).Error
	return applicants, err
}

func (r *ApplicantRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&model.Applicant{}).Count(&n).Error
	return n, err
}
