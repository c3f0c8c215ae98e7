package jobfilter

import (
	"time"

	"github.com/yohanvishvajith/sintravels-sub000/internal/model"
)

// Midnight normalizes a time to 00:00 in its own location. Expiry is
// compared at day granularity only.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsExpired reports whether the job's closing date has passed. A job
// expires when its closing date is strictly before today, compared at
// day granularity by calendar date so a UTC-parsed closing date and a
// local clock agree. Jobs without a closing date never expire.
func IsExpired(j *model.Job, today time.Time) bool {
	if j.ClosingDate == nil {
		return false
	}
	cy, cm, cd := j.ClosingDate.Date()
	ty, tm, td := today.Date()
	closing := time.Date(cy, cm, cd, 0, 0, 0, 0, time.UTC)
	now := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return closing.Before(now)
}

// Partition splits jobs into active and expired slices, preserving
// order. Both admin views derive from the same fetched set.
func Partition(jobs []model.Job, today time.Time) (active, expired []model.Job) {
	for i := range jobs {
		if IsExpired(&jobs[i], today) {
			expired = append(expired, jobs[i])
		} else {
			active = append(active, jobs[i])
		}
	}
	return active, expired
}
