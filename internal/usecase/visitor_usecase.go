package usecase

import (
	"time"

	"github.com/yohanvishvajith/sintravels-sub000/internal/jobfilter"
	"github.com/yohanvishvajith/sintravels-sub000/internal/model"
	"github.com/yohanvishvajith/sintravels-sub000/internal/repository"
)

type VisitorUsecase struct {
	visitorRepo *repository.VisitorRepository
}

func NewVisitorUsecase(visitorRepo *repository.VisitorRepository) *VisitorUsecase {
	return &VisitorUsecase{visitorRepo: visitorRepo}
}

// Track appends a hit; identity is just what the request carries.
func (uc *VisitorUsecase) Track(ip, userAgent, page, referrer string) error {
	return uc.visitorRepo.Create(&model.Visitor{
		IPAddress: ip,
		UserAgent: userAgent,
		Page:      page,
		Referrer:  referrer,
		CreatedAt: time.Now(),
	})
}

type VisitorCounts struct {
	Total int64 `json:"total"`
	Today int64 `json:"today"`
	Week  int64 `json:"week"`
	Month int64 `json:"month"`
}

// Counts aggregates traffic with midnight-normalized day boundaries.
func (uc *VisitorUsecase) Counts() (*VisitorCounts, error) {
	now := time.Now()
	today := jobfilter.Midnight(now)

	total, err := uc.visitorRepo.CountAll()
	if err != nil {
		return nil, err
	}
	todayCount, err := uc.visitorRepo.CountSince(today)
	if err != nil {
		return nil, err
	}
	week, err := uc.visitorRepo.CountSince(today.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}
	month, err := uc.visitorRepo.CountSince(today.AddDate(0, -1, 0))
	if err != nil {
		return nil, err
	}
	return &VisitorCounts{Total: total, Today: todayCount, Week: week, Month: month}, nil
}
