package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Job struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title          string         `json:"title"`
	Company        string         `json:"company"`
	Location       string         `json:"location"`
	Country        string         `json:"country"`
	Flag           string         `json:"flag"`
	SalaryMin      int            `json:"salaryMin"`
	SalaryMax      *int           `json:"salaryMax"` // nil means "min + overtime"
	Currency       string         `gorm:"type:varchar(10)" json:"currency"`
	Type           string         `gorm:"type:varchar(50)" json:"type"`
	WorkTime       string         `json:"workTime"`
	Industry       string         `json:"industry"`
	Experience     string         `json:"experience"`
	Remote         bool           `json:"remote"`
	Description    string         `gorm:"type:text" json:"description"`
	Requirements   pq.StringArray `gorm:"type:text[]" json:"requirements"`
	Benefits       pq.StringArray `gorm:"type:text[]" json:"benefits"`
	AgeMin         int            `json:"ageMin"`
	AgeMax         int            `json:"ageMax"`
	Gender         string         `gorm:"type:varchar(10)" json:"gender"` // male, female, both
	Vacancies      int            `json:"vacancies"`
	Holidays       string         `json:"holidays"`
	VisaCategory   string         `json:"visaCategory"`
	ContractPeriod string         `json:"contractPeriod"`
	ClosingDate    *time.Time     `json:"closingDate"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

func (j *Job) TableName() string {
	return "jobs"
}

// JobBenefit links a job to a selected benefit. Links are replaced as a
// set whenever the job is saved and removed when the job is deleted.
type JobBenefit struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	JobID     uuid.UUID `gorm:"type:uuid;index" json:"jobId"`
	BenefitID uuid.UUID `gorm:"type:uuid;index" json:"benefitId"`
}

func (jb *JobBenefit) TableName() string {
	return "job_benefits"
}
