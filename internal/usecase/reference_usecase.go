package usecase

import (
	"strings"

	"github.com/google/uuid"
	"github.com/yohanvishvajith/sintravels-sub000/internal/model"
	"github.com/yohanvishvajith/sintravels-sub000/internal/repository"
	"github.com/yohanvishvajith/sintravels-sub000/internal/util"
)

// ReferenceUsecase handles the three dropdown entities. Create and
// update share validation: name non-blank, id required for updates.
type ReferenceUsecase struct {
	refRepo *repository.ReferenceRepository
}

func NewReferenceUsecase(refRepo *repository.ReferenceRepository) *ReferenceUsecase {
	return &ReferenceUsecase{refRepo: refRepo}
}

func validateReference(id, name string, requireID bool) (uuid.UUID, error) {
	if strings.TrimSpace(name) == "" {
		return uuid.Nil, util.MissingField("name")
	}
	if !requireID {
		return uuid.Nil, nil
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, util.MissingField("id")
	}
	return parsed, nil
}

func (uc *ReferenceUsecase) ListCountries() ([]model.Country, error) {
	return uc.refRepo.ListCountries()
}

func (uc *ReferenceUsecase) SaveCountry(id, name, flagImg string, isUpdate bool) (*model.Country, error) {
	parsed, err := validateReference(id, name, isUpdate)
	if err != nil {
		return nil, err
	}
	c := &model.Country{ID: parsed, Name: strings.TrimSpace(name), FlagImg: flagImg}
	if err := uc.refRepo.SaveCountry(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *ReferenceUsecase) DeleteCountry(id string) error {
	if id == "" {
		return util.MissingField("id")
	}
	return uc.refRepo.DeleteCountry(id)
}

func (uc *ReferenceUsecase) ListIndustries() ([]model.Industry, error) {
	return uc.refRepo.ListIndustries()
}

func (uc *ReferenceUsecase) SaveIndustry(id, name string, isUpdate bool) (*model.Industry, error) {
	parsed, err := validateReference(id, name, isUpdate)
	if err != nil {
		return nil, err
	}
	i := &model.Industry{ID: parsed, Name: strings.TrimSpace(name)}
	if err := uc.refRepo.SaveIndustry(i); err != nil {
		return nil, err
	}
	return i, nil
}

func (uc *ReferenceUsecase) DeleteIndustry(id string) error {
	if id == "" {
		return util.MissingField("id")
	}
	return uc.refRepo.DeleteIndustry(id)
}

func (uc *ReferenceUsecase) ListBenefits() ([]model.Benefit, error) {
	return uc.refRepo.ListBenefits()
}

func (uc *ReferenceUsecase) SaveBenefit(id, name string, isUpdate bool) (*model.Benefit, error) {
	parsed, err := validateReference(id, name, isUpdate)
	if err != nil {
		return nil, err
	}
	b := &model.Benefit{ID: parsed, Name: strings.TrimSpace(name)}
	if err := uc.refRepo.SaveBenefit(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (uc *ReferenceUsecase) DeleteBenefit(id string) error {
	if id == "" {
		return util.MissingField("id")
	}
	return uc.refRepo.DeleteBenefit(id)
}
