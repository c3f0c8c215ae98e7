package jobfilter

import (
	"strings"

	"github.com/yohanvishvajith/sintravels-sub000/internal/model"
)

// Filters holds the public listing's filter state. Zero values mean
// "not filtering on this dimension"; the zero Filters is the identity.
type Filters struct {
	Search     string
	Country    string
	Industry   string
	Experience string
	Type       string
	Remote     bool
	SalaryMin  int
	SalaryMax  int
}

func (f Filters) salaryActive() bool {
	return f.SalaryMin > 0 || f.SalaryMax > 0
}

// Matches is the conjunction of all active filter predicates. Search is
// a case-insensitive substring test on title or company; country,
// industry, experience and type are exact matches; remote requires the
// flag set. Salary is a containment test, not overlap: the job's whole
// range must sit inside the filter's range, so a job whose maximum
// exceeds the ceiling is excluded even when its minimum qualifies. A
// nil job maximum counts as zero and passes any ceiling.
func (f Filters) Matches(j *model.Job) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(j.Title), q) &&
			!strings.Contains(strings.ToLower(j.Company), q) {
			return false
		}
	}
	if f.Country != "" && j.Country != f.Country {
		return false
	}
	if f.Industry != "" && j.Industry != f.Industry {
		return false
	}
	if f.Experience != "" && j.Experience != f.Experience {
		return false
	}
	if f.Type != "" && j.Type != f.Type {
		return false
	}
	if f.Remote && !j.Remote {
		return false
	}
	if f.salaryActive() {
		if j.SalaryMin < f.SalaryMin {
			return false
		}
		if f.SalaryMax > 0 {
			jobMax := 0
			if j.SalaryMax != nil {
				jobMax = *j.SalaryMax
			}
			if jobMax > f.SalaryMax {
				return false
			}
		}
	}
	return true
}

// Filter returns the jobs satisfying every active filter, in order.
func Filter(jobs []model.Job, f Filters) []model.Job {
	out := make([]model.Job, 0, len(jobs))
	for i := range jobs {
		if f.Matches(&jobs[i]) {
			out = append(out, jobs[i])
		}
	}
	return out
}
