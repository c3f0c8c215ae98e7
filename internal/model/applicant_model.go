package model

import (
	"time"

	"github.com/google/uuid"
)

// Applicant references a user and a job but owns neither; rows survive
// deletion of either side. The unique index closes the duplicate-submit
// race: inserts for the same (user, job) pair conflict instead of
// duplicating. Postgres treats NULL user ids as distinct, so anonymous
// applications are never deduplicated.
type Applicant struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_applicant_user_job" json:"userId"`
	JobID      uuid.UUID  `gorm:"type:uuid;uniqueIndex:uq_applicant_user_job" json:"jobId"`
	CoverNote  string     `gorm:"type:text" json:"coverNote"`
	ResumePath string     `json:"resumePath"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func (a *Applicant) TableName() string {
	return "applicants"
}
