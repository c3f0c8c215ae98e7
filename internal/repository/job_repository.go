package repository

import (
	"github.com/google/uuid"
	"github.com/yohanvishvajith/sintravels-sub000/internal/model"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

// List returns up to limit jobs, newest first. Filtering happens after
// the fetch; the store only bounds and orders.
func (r *JobRepository) List(limit int) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.Order("created_at DESC").Limit(limit).Find(&jobs).Error
	return jobs, err
}

func (r *JobRepository) FindByID(id string) (*model.Job, error) {
	var j model.Job
	err := r.db.First(&j, "id = ?", id).Error
	return &j, err
}

func (r *JobRepository) Create(job *model.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepository) Update(job *model.Job) error {
	return r.db.Save(job).Error
}

// Delete hard-deletes the job and its benefit links.
func (r *JobRepository) Delete(id string) error {
	if err := r.db.Where("job_id = ?", id).Delete(&model.JobBenefit{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&model.Job{}, "id = ?", id).Error
}

// ReplaceBenefitLinks makes the job's benefit associations exactly match
// the submitted set: existing links are dropped and the new set inserted.
func (r *JobRepository) ReplaceBenefitLinks(jobID uuid.UUID, benefitIDs []uuid.UUID) error {
	if err := r.db.Where("job_id = ?", jobID).Delete(&model.JobBenefit{}).Error; err != nil {
		return err
	}
	if len(benefitIDs) == 0 {
		return nil
	}
	links := make([]model.JobBenefit, 0, len(benefitIDs))
	for _, bid := range benefitIDs {
		links = append(links, model.JobBenefit{JobID: jobID, BenefitID: bid})
	}
	return r.db.Create(&links).Error
}

// BenefitLinks returns the benefit ids linked to a job, for hydrating
// the admin edit view.
func (r *JobRepository) BenefitLinks(jobID uuid.UUID) ([]uuid.UUID, error) {
	var links []model.JobBenefit
	if err := r.db.Where("job_id = ?", jobID).Find(&links).Error; err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.BenefitID)
	}
	return ids, nil
}

func (r *JobRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&model.Job{}).Count(&n).Error
	return n, err
}
