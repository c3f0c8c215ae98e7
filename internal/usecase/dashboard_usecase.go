package usecase

import (
	"time"

	"github.com/yohanvishvajith/sintravels-sub000/internal/jobfilter"
	"github.com/yohanvishvajith/sintravels-sub000/internal/repository"
)

// DashboardUsecase computes the counters shown on the admin landing
// page.
type DashboardUsecase struct {
	jobRepo       *repository.JobRepository
	applicantRepo *repository.ApplicantRepository
	refRepo       *repository.ReferenceRepository
	userRepo      *repository.UserRepository
}

func NewDashboardUsecase(
	jobRepo *repository.JobRepository,
	applicantRepo *repository.ApplicantRepository,
	refRepo *repository.ReferenceRepository,
	userRepo *repository.UserRepository,
) *DashboardUsecase {
	return &DashboardUsecase{
		jobRepo:       jobRepo,
		applicantRepo: applicantRepo,
		refRepo:       refRepo,
		userRepo:      userRepo,
	}
}

type DashboardStats struct {
	ActiveJobs  int   `json:"activeJobs"`
	ExpiredJobs int   `json:"expiredJobs"`
	Applicants  int64 `json:"applicants"`
	Countries   int64 `json:"countries"`
	Industries  int64 `json:"industries"`
	Benefits    int64 `json:"benefits"`
	Users       int64 `json:"users"`
}

func (uc *DashboardUsecase) Stats() (*DashboardStats, error) {
	jobs, err := uc.jobRepo.List(listLimit)
	if err != nil {
		return nil, err
	}
	active, expired := jobfilter.Partition(jobs, time.Now())

	stats := &DashboardStats{
		ActiveJobs:  len(active),
		ExpiredJobs: len(expired),
	}
	if stats.Applicants, err = uc.applicantRepo.Count(); err != nil {
		return nil, err
	}
	if stats.Countries, err = uc.refRepo.CountCountries(); err != nil {
		return nil, err
	}
	if stats.Industries, err = uc.refRepo.CountIndustries(); err != nil {
		return nil, err
	}
	if stats.Benefits, err = uc.refRepo.CountBenefits(); err != nil {
		return nil, err
	}
	if stats.Users, err = uc.userRepo.Count(); err != nil {
		return nil, err
	}
	return stats, nil
}
