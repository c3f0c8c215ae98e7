package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/yohanvishvajith/sintravels-sub000/internal/model"
	"github.com/yohanvishvajith/sintravels-sub000/internal/util"
)

// JobInput is the canonical form of an admin job payload. Loose shapes
// (requirements/benefits as array or comma string, salaries as number
// or numeric string) are normalized here and never leak further.
type JobInput struct {
	ID               string
	Title            string
	Company          string
	Location         string
	Country          string
	Flag             string
	SalaryMin        int
	SalaryMax        *int // nil when submitted as exactly 0 ("no maximum")
	Currency         string
	Type             string
	WorkTime         string
	Industry         string
	Experience       string
	Remote           bool
	Description      string
	Requirements     []string
	Benefits         []string
	AgeMin           int
	AgeMax           int
	Gender           string
	Vacancies        int
	Holidays         string
	VisaCategory     string
	ContractPeriod   string
	ClosingDate      time.Time
	SelectedBenefits []uuid.UUID
}

var requiredJobFields = []string{
	"title", "company", "salaryMin", "salaryMax", "currency", "type", "description", "closingDate",
}

// ParseJobInput validates and normalizes a raw create/update body. The
// first missing required field fails the whole parse with a 400-shaped
// error naming that field.
func ParseJobInput(body []byte, requireID bool) (*JobInput, error) {
	if !gjson.ValidBytes(body) {
		return nil, util.NewValidationError("body", "request body must be valid JSON")
	}
	doc := gjson.ParseBytes(body)

	if requireID && util.TrimmedString(doc.Get("id")) == "" {
		return nil, util.MissingField("id")
	}
	for _, f := range requiredJobFields {
		v := doc.Get(f)
		if !v.Exists() || (v.Type == gjson.String && util.TrimmedString(v) == "") {
			return nil, util.MissingField(f)
		}
	}

	salaryMin, okMin := util.ParseIntField(doc.Get("salaryMin"))
	salaryMax, okMax := util.ParseIntField(doc.Get("salaryMax"))
	if !okMin || !okMax {
		return nil, util.NewValidationError("salaryMin", "salaryMin and salaryMax must be numbers")
	}

	closing, err := parseDate(util.TrimmedString(doc.Get("closingDate")))
	if err != nil {
		return nil, util.NewValidationError("closingDate", "closingDate must be a valid date")
	}

	in := &JobInput{
		ID:             util.TrimmedString(doc.Get("id")),
		Title:          util.TrimmedString(doc.Get("title")),
		Company:        util.TrimmedString(doc.Get("company")),
		Location:       util.TrimmedString(doc.Get("location")),
		Country:        util.TrimmedString(doc.Get("country")),
		Flag:           util.TrimmedString(doc.Get("flag")),
		SalaryMin:      salaryMin,
		Currency:       util.TrimmedString(doc.Get("currency")),
		Type:           util.TrimmedString(doc.Get("type")),
		WorkTime:       util.TrimmedString(doc.Get("workTime")),
		Industry:       util.TrimmedString(doc.Get("industry")),
		Experience:     util.TrimmedString(doc.Get("experience")),
		Remote:         doc.Get("remote").Bool(),
		Description:    util.TrimmedString(doc.Get("description")),
		Requirements:   util.NormalizeStringList(doc.Get("requirements")),
		Benefits:       util.NormalizeStringList(doc.Get("benefits")),
		Gender:         util.TrimmedString(doc.Get("gender")),
		Holidays:       util.TrimmedString(doc.Get("holidays")),
		VisaCategory:   util.TrimmedString(doc.Get("visaCategory")),
		ContractPeriod: util.TrimmedString(doc.Get("contractPeriod")),
		ClosingDate:    closing,
	}

	// Zero maximum means "min + overtime", stored as NULL and distinct
	// from "not provided" (which already failed above).
	if salaryMax != 0 {
		in.SalaryMax = &salaryMax
	}

	if v := doc.Get("ageMin"); v.Exists() {
		if n, ok := util.ParseIntField(v); ok {
			in.AgeMin = n
		}
	}
	if v := doc.Get("ageMax"); v.Exists() {
		if n, ok := util.ParseIntField(v); ok {
			in.AgeMax = n
		}
	}
	if v := doc.Get("vacancies"); v.Exists() {
		n, ok := util.ParseIntField(v)
		if !ok || n < 0 {
			return nil, util.NewValidationError("vacancies", "vacancies must be zero or a positive number")
		}
		in.Vacancies = n
	}

	selected := doc.Get("selectedBenefits")
	if !selected.Exists() {
		selected = doc.Get("benefitIds")
	}
	for _, item := range selected.Array() {
		id, err := uuid.Parse(item.String())
		if err != nil {
			return nil, util.NewValidationError("selectedBenefits", "selectedBenefits must be a list of benefit ids")
		}
		in.SelectedBenefits = append(in.SelectedBenefits, id)
	}

	return in, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// Apply copies the input onto a job model.
func (in *JobInput) Apply(j *model.Job) {
	j.Title = in.Title
	j.Company = in.Company
	j.Location = in.Location
	j.Country = in.Country
	j.Flag = in.Flag
	j.SalaryMin = in.SalaryMin
	j.SalaryMax = in.SalaryMax
	j.Currency = in.Currency
	j.Type = in.Type
	j.WorkTime = in.WorkTime
	j.Industry = in.Industry
	j.Experience = in.Experience
	j.Remote = in.Remote
	j.Description = in.Description
	j.Requirements = in.Requirements
	j.Benefits = in.Benefits
	j.AgeMin = in.AgeMin
	j.AgeMax = in.AgeMax
	j.Gender = in.Gender
	j.Vacancies = in.Vacancies
	j.Holidays = in.Holidays
	j.VisaCategory = in.VisaCategory
	j.ContractPeriod = in.ContractPeriod
	closing := in.ClosingDate
	j.ClosingDate = &closing
}
