package usecase

import (
	"time"

	"github.com/yohanvishvajith/sintravels-sub000/internal/dto"
	"github.com/yohanvishvajith/sintravels-sub000/internal/jobfilter"
	"github.com/yohanvishvajith/sintravels-sub000/internal/model"
	"github.com/yohanvishvajith/sintravels-sub000/internal/repository"
	"github.com/yohanvishvajith/sintravels-sub000/internal/util"
)

// listLimit bounds the listing fetch. Attribute filtering happens
// after the fetch; the server only bounds, orders and drops expired
// postings from the public view.
const listLimit = 100

type JobUsecase struct {
	jobRepo *repository.JobRepository
}

func NewJobUsecase(jobRepo *repository.JobRepository) *JobUsecase {
	return &JobUsecase{jobRepo: jobRepo}
}

// PublicList returns up to 100 non-expired jobs, newest first. Expired
// postings stay in storage for the admin view but never reach the
// public listing.
func (uc *JobUsecase) PublicList() ([]model.Job, error) {
	jobs, err := uc.jobRepo.List(listLimit)
	if err != nil {
		return nil, err
	}
	active, _ := jobfilter.Partition(jobs, time.Now())
	return active, nil
}

// AdminList partitions the same bounded fetch into active and expired.
func (uc *JobUsecase) AdminList() (active, expired []model.Job, err error) {
	jobs, err := uc.jobRepo.List(listLimit)
	if err != nil {
		return nil, nil, err
	}
	active, expired = jobfilter.Partition(jobs, time.Now())
	return active, expired, nil
}

func (uc *JobUsecase) Create(body []byte) (*model.Job, error) {
	in, err := dto.ParseJobInput(body, false)
	if err != nil {
		return nil, err
	}
	var job model.Job
	in.Apply(&job)
	job.CreatedAt = time.Now()
	job.UpdatedAt = time.Now()
	if err := uc.jobRepo.Create(&job); err != nil {
		return nil, err
	}
	if err := uc.jobRepo.ReplaceBenefitLinks(job.ID, in.SelectedBenefits); err != nil {
		return nil, err
	}
	return &job, nil
}

func (uc *JobUsecase) Update(body []byte) (*model.Job, error) {
	in, err := dto.ParseJobInput(body, true)
	if err != nil {
		return nil, err
	}
	job, err := uc.jobRepo.FindByID(in.ID)
	if err != nil {
		return nil, err
	}
	in.Apply(job)
	job.UpdatedAt = time.Now()
	if err := uc.jobRepo.Update(job); err != nil {
		return nil, err
	}
	if err := uc.jobRepo.ReplaceBenefitLinks(job.ID, in.SelectedBenefits); err != nil {
		return nil, err
	}
	return job, nil
}

// Delete hard-deletes a job and its benefit links. Deleting an already
// absent id still succeeds.
func (uc *JobUsecase) Delete(id string) error {
	if id == "" {
		return util.MissingField("id")
	}
	return uc.jobRepo.Delete(id)
}

// BenefitLinkIDs hydrates the admin edit view's selected benefits.
func (uc *JobUsecase) BenefitLinkIDs(id string) ([]string, error) {
	job, err := uc.jobRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	ids, err := uc.jobRepo.BenefitLinks(job.ID)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(ids))
	for _, bid := range ids {
		out = append(out, bid.String())
	}
	return out, nil
}
