package jobfilter_test

import (
	"testing"

	"github.com/yohanvishvajith/sintravels-sub000/internal/jobfilter"
	"github.com/yohanvishvajith/sintravels-sub000/internal/model"
)

func intPtr(n int) *int { return &n }

func sampleJobs() []model.Job {
	return []model.Job{
		{Title: "Welder", Company: "Acme", Country: "Qatar", Industry: "Construction", Experience: "2 years", Type: "Full-time", SalaryMin: 500, SalaryMax: nil},
		{Title: "Senior Welder", Company: "Globex", Country: "UAE", Industry: "Construction", Experience: "5 years", Type: "Full-time", SalaryMin: 900, SalaryMax: intPtr(1500)},
		{Title: "Backend Engineer", Company: "Initech", Country: "Qatar", Industry: "IT", Experience: "3 years", Type: "Contract", Remote: true, SalaryMin: 50000, SalaryMax: intPtr(250000)},
		{Title: "Nurse", Company: "Mercy Hospital", Country: "Kuwait", Industry: "Healthcare", Experience: "2 years", Type: "Full-time", SalaryMin: 700, SalaryMax: intPtr(900)},
	}
}

func TestFilter_IdentityFilterReturnsEverything(t *testing.T) {
	jobs := sampleJobs()
	got := jobfilter.Filter(jobs, jobfilter.Filters{})
	if len(got) != len(jobs) {
		t.Fatalf("identity filter returned %d jobs, want %d", len(got), len(jobs))
	}
}

func TestFilter_ResultIsSubset(t *testing.T) {
	jobs := sampleJobs()
	got := jobfilter.Filter(jobs, jobfilter.Filters{Country: "Qatar"})
	if len(got) >= len(jobs) {
		t.Fatalf("filtered set should be a strict subset, got %d of %d", len(got), len(jobs))
	}
	for _, j := range got {
		if j.Country != "Qatar" {
			t.Errorf("job %q has country %q, want Qatar", j.Title, j.Country)
		}
	}
}

func TestFilter_SearchMatchesTitleOrCompany(t *testing.T) {
	jobs := sampleJobs()
	cases := []struct {
		search string
		want   int
	}{
		{"welder", 2},   // case-insensitive title match
		{"WELDER", 2},
		{"initech", 1},  // company match
		{"mercy", 1},
		{"zzz", 0},
	}
	for _, c := range cases {
		got := jobfilter.Filter(jobs, jobfilter.Filters{Search: c.search})
		if len(got) != c.want {
			t.Errorf("search %q matched %d jobs, want %d", c.search, len(got), c.want)
		}
	}
}

func TestFilter_ExactMatchDimensions(t *testing.T) {
	jobs := sampleJobs()
	cases := []struct {
		name string
		f    jobfilter.Filters
		want int
	}{
		{"country", jobfilter.Filters{Country: "Qatar"}, 2},
		{"industry", jobfilter.Filters{Industry: "Construction"}, 2},
		{"experience", jobfilter.Filters{Experience: "2 years"}, 2},
		{"type", jobfilter.Filters{Type: "Contract"}, 1},
		{"conjunction", jobfilter.Filters{Country: "Qatar", Industry: "IT"}, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := jobfilter.Filter(jobs, c.f)
			if len(got) != c.want {
				t.Errorf("got %d jobs, want %d", len(got), c.want)
			}
		})
	}
}

func TestFilter_RemoteRequiresFlag(t *testing.T) {
	jobs := sampleJobs()
	got := jobfilter.Filter(jobs, jobfilter.Filters{Remote: true})
	if len(got) != 1 || got[0].Title != "Backend Engineer" {
		t.Fatalf("remote filter got %v, want only the remote job", got)
	}
}

// A job whose maximum exceeds the filter ceiling is excluded even when
// its minimum is inside the range. Containment, not overlap.
func TestFilter_SalaryContainmentNotOverlap(t *testing.T) {
	jobs := []model.Job{
		{Title: "Engineer", SalaryMin: 50000, SalaryMax: intPtr(250000)},
	}
	got := jobfilter.Filter(jobs, jobfilter.Filters{SalaryMin: 40000, SalaryMax: 200000})
	if len(got) != 0 {
		t.Fatal("job with max=250000 should be excluded by ceiling 200000")
	}

	got = jobfilter.Filter(jobs, jobfilter.Filters{SalaryMin: 40000, SalaryMax: 250000})
	if len(got) != 1 {
		t.Fatal("job should be included when its whole range fits")
	}
}

func TestFilter_SalaryMinFloor(t *testing.T) {
	jobs := sampleJobs()
	got := jobfilter.Filter(jobs, jobfilter.Filters{SalaryMin: 800})
	for _, j := range got {
		if j.SalaryMin < 800 {
			t.Errorf("job %q min %d below floor", j.Title, j.SalaryMin)
		}
	}
}

func TestFilter_NilSalaryMaxPassesAnyCeiling(t *testing.T) {
	jobs := []model.Job{{Title: "Welder", SalaryMin: 500, SalaryMax: nil}}
	got := jobfilter.Filter(jobs, jobfilter.Filters{SalaryMin: 100, SalaryMax: 600})
	if len(got) != 1 {
		t.Fatal("job without a maximum should pass any ceiling")
	}
}
