package wizard_test

import (
	"strings"
	"testing"

	"github.com/yohanvishvajith/sintravels-sub000/internal/wizard"
)

func validPersonal() wizard.PersonalInfo {
	return wizard.PersonalInfo{
		FirstName:   "Nimal",
		LastName:    "Perera",
		Email:       "nimal@example.com",
		Phone:       "+94 77 123 4567",
		Nationality: "Sri Lankan",
		Summary:     strings.Repeat("Experienced welder with offshore projects. ", 3),
	}
}

func validExperience() wizard.Experience {
	return wizard.Experience{
		Entries: []wizard.WorkHistoryEntry{{
			JobTitle:    "Welder",
			Company:     "Acme",
			Location:    "Doha",
			StartDate:   "2021-03-01",
			Description: "Structural welding on site",
		}},
		Skills: "MIG, TIG, blueprint reading",
	}
}

func validDocuments() wizard.Documents {
	return wizard.Documents{
		ResumePath: "/uploads/resumes/123-cv.pdf",
		ResumeSize: 120 * 1024,
		ResumeMIME: "application/pdf",
	}
}

func TestWizard_HappyPath(t *testing.T) {
	w := wizard.New("job-1")
	if w.State != wizard.StepPersonalInfo {
		t.Fatalf("new wizard state = %s, want PERSONAL_INFO", w.State)
	}

	if errs, err := w.SubmitPersonalInfo(validPersonal()); err != nil {
		t.Fatalf("personal info: %v (%v)", err, errs)
	}
	if w.State != wizard.StepExperience {
		t.Fatalf("state = %s, want EXPERIENCE", w.State)
	}
	if errs, err := w.SubmitExperience(validExperience()); err != nil {
		t.Fatalf("experience: %v (%v)", err, errs)
	}
	if errs, err := w.SubmitDocuments(validDocuments()); err != nil {
		t.Fatalf("documents: %v (%v)", err, errs)
	}
	if w.State != wizard.StepReview {
		t.Fatalf("state = %s, want REVIEW", w.State)
	}
	if err := w.Complete(); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if w.State != wizard.StepSuccess {
		t.Fatalf("state = %s, want SUCCESS", w.State)
	}
}

func TestWizard_ValidationFailureMergesNothing(t *testing.T) {
	w := wizard.New("job-1")
	bad := validPersonal()
	bad.Summary = "too short"

	errs, err := w.SubmitPersonalInfo(bad)
	if err != wizard.ErrValidation {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if errs["summary"] == "" {
		t.Error("expected a summary field error")
	}
	if w.State != wizard.StepPersonalInfo {
		t.Errorf("state advanced to %s on invalid data", w.State)
	}
	if w.Data.PersonalInfo != nil {
		t.Error("accumulator was mutated by a failed step")
	}
}

func TestWizard_PersonalInfoFieldValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*wizard.PersonalInfo)
		field  string
	}{
		{"missing first name", func(p *wizard.PersonalInfo) { p.FirstName = " " }, "firstName"},
		{"missing last name", func(p *wizard.PersonalInfo) { p.LastName = "" }, "lastName"},
		{"bad email", func(p *wizard.PersonalInfo) { p.Email = "not-an-email" }, "email"},
		{"short phone", func(p *wizard.PersonalInfo) { p.Phone = "12345" }, "phone"},
		{"missing nationality", func(p *wizard.PersonalInfo) { p.Nationality = "" }, "nationality"},
		{"short summary", func(p *wizard.PersonalInfo) { p.Summary = "brief" }, "summary"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := validPersonal()
			c.mutate(&p)
			errs := p.Validate()
			if errs[c.field] == "" {
				t.Errorf("expected error on field %q, got %v", c.field, errs)
			}
		})
	}
}

func TestWizard_ExperienceValidation(t *testing.T) {
	e := wizard.Experience{}
	errs := e.Validate()
	if errs["entries"] == "" || errs["skills"] == "" {
		t.Errorf("empty experience should fail entries and skills, got %v", errs)
	}

	e = validExperience()
	e.Entries[0].StartDate = ""
	if errs := e.Validate(); errs["entries"] == "" {
		t.Error("incomplete entry should fail validation")
	}
}

func TestWizard_DocumentsValidation(t *testing.T) {
	d := validDocuments()

	d.ResumeSize = wizard.MaxResumeSize + 1
	if errs := d.Validate(); errs["resume"] == "" {
		t.Error("oversized resume should fail")
	}

	d = validDocuments()
	d.ResumeMIME = "image/png"
	if errs := d.Validate(); errs["resume"] == "" {
		t.Error("unaccepted MIME should fail")
	}

	d = validDocuments()
	d.ResumePath = ""
	if errs := d.Validate(); errs["resume"] == "" {
		t.Error("missing resume should fail")
	}
}

func TestWizard_NoSkippingForward(t *testing.T) {
	w := wizard.New("job-1")
	if _, err := w.SubmitExperience(validExperience()); err != wizard.ErrWrongStep {
		t.Errorf("skipping to experience: err = %v, want ErrWrongStep", err)
	}
	if _, err := w.SubmitDocuments(validDocuments()); err != wizard.ErrWrongStep {
		t.Errorf("skipping to documents: err = %v, want ErrWrongStep", err)
	}
	if err := w.Complete(); err != wizard.ErrNotReview {
		t.Errorf("completing from start: err = %v, want ErrNotReview", err)
	}
}

func TestWizard_BackNavigation(t *testing.T) {
	w := wizard.New("job-1")
	if err := w.Back(); err != wizard.ErrAtStart {
		t.Fatalf("back from first step: err = %v, want ErrAtStart", err)
	}

	if _, err := w.SubmitPersonalInfo(validPersonal()); err != nil {
		t.Fatal(err)
	}
	if err := w.Back(); err != nil {
		t.Fatalf("back from experience: %v", err)
	}
	if w.State != wizard.StepPersonalInfo {
		t.Fatalf("state = %s, want PERSONAL_INFO", w.State)
	}
	// previously merged data survives going back
	if w.Data.PersonalInfo == nil {
		t.Error("accumulated data lost on back navigation")
	}
}

func TestWizard_SuccessIsTerminal(t *testing.T) {
	w := wizard.New("job-1")
	w.SubmitPersonalInfo(validPersonal())
	w.SubmitExperience(validExperience())
	w.SubmitDocuments(validDocuments())
	if err := w.Complete(); err != nil {
		t.Fatal(err)
	}

	if err := w.Back(); err != wizard.ErrTerminal {
		t.Errorf("back after success: err = %v, want ErrTerminal", err)
	}
	if _, err := w.SubmitPersonalInfo(validPersonal()); err != wizard.ErrTerminal {
		t.Errorf("resubmit after success: err = %v, want ErrTerminal", err)
	}
	if err := w.Complete(); err != wizard.ErrTerminal {
		t.Errorf("double complete: err = %v, want ErrTerminal", err)
	}
}

func TestParseStep(t *testing.T) {
	for _, s := range []string{"PERSONAL_INFO", "EXPERIENCE", "DOCUMENTS", "REVIEW", "SUCCESS"} {
		got, err := wizard.ParseStep(s)
		if err != nil {
			t.Errorf("ParseStep(%q) error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseStep(%q) = %q", s, got)
		}
	}
	if _, err := wizard.ParseStep("NOPE"); err == nil {
		t.Error("ParseStep(\"NOPE\") expected error")
	}
}
