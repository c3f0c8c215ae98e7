package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/yohanvishvajith/sintravels-sub000/internal/model"
	"github.com/yohanvishvajith/sintravels-sub000/internal/util"
)

// ApplicantStore is the slice of the applicant repository the
// application flow needs. *repository.ApplicantRepository satisfies it.
type ApplicantStore interface {
	CreateIfAbsent(a *model.Applicant) (created bool, err error)
	HasApplied(userID, jobID string) (bool, error)
	List() ([]model.Applicant, error)
}

type ApplicationUsecase struct {
	applicantRepo ApplicantStore
}

func NewApplicationUsecase(applicantRepo ApplicantStore) *ApplicationUsecase {
	return &ApplicationUsecase{applicantRepo: applicantRepo}
}

type ApplyInput struct {
	JobID      string
	UserID     string // empty for anonymous applications
	CoverNote  string
	ResumePath string
}

// Apply records an application. A repeat submission by the same user
// for the same job is an idempotent no-op: the insert conflicts on the
// unique (user, job) index and the caller still sees success.
func (uc *ApplicationUsecase) Apply(in ApplyInput) (*model.Applicant, bool, error) {
	jobID, err := uuid.Parse(in.JobID)
	if err != nil {
		return nil, false, util.MissingField("jobId")
	}
	applicant := &model.Applicant{
		JobID:      jobID,
		CoverNote:  in.CoverNote,
		ResumePath: in.ResumePath,
		CreatedAt:  time.Now(),
	}
	if in.UserID != "" {
		userID, err := uuid.Parse(in.UserID)
		if err != nil {
			return nil, false, util.NewValidationError("userId", "userId must be a valid id")
		}
		applicant.UserID = &userID
	}
	created, err := uc.applicantRepo.CreateIfAbsent(applicant)
	if err != nil {
		return nil, false, err
	}
	return applicant, !created, nil
}

func (uc *ApplicationUsecase) HasApplied(userID, jobID string) (bool, error) {
	if userID == "" || jobID == "" {
		return false, nil
	}
	return uc.applicantRepo.HasApplied(userID, jobID)
}

func (uc *ApplicationUsecase) List() ([]model.Applicant, error) {
	return uc.applicantRepo.List()
}
