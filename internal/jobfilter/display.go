package jobfilter

import (
	"fmt"

	"github.com/yohanvishvajith/sintravels-sub000/internal/model"
)

// Presentation defaults for job cards. These are display fallbacks only
// and are never written back to stored rows.
const (
	defaultCurrency = "$"
	defaultAgeMin   = 25
	defaultAgeMax   = 45
	defaultGender   = "Male"
)

// SalaryDisplay renders the card salary line. Without a maximum (nil or
// zero) the minimum gets a "+ OT" suffix; a missing currency falls back
// to the dollar sign.
func SalaryDisplay(j *model.Job) string {
	currency := j.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	if j.SalaryMax == nil || *j.SalaryMax == 0 {
		return fmt.Sprintf("%s %d + OT", currency, j.SalaryMin)
	}
	return fmt.Sprintf("%s %d - %d", currency, j.SalaryMin, *j.SalaryMax)
}

// AgeRangeDisplay falls back to 25-45 when the job has no age range.
func AgeRangeDisplay(j *model.Job) string {
	min, max := j.AgeMin, j.AgeMax
	if min == 0 && max == 0 {
		min, max = defaultAgeMin, defaultAgeMax
	}
	return fmt.Sprintf("%d - %d", min, max)
}

// GenderDisplay falls back to "Male" when unset.
func GenderDisplay(j *model.Job) string {
	switch j.Gender {
	case "male":
		return "Male"
	case "female":
		return "Female"
	case "both":
		return "Male / Female"
	default:
		return defaultGender
	}
}
