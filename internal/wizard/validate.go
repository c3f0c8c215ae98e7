package wizard

import (
	"regexp"
	"strings"
)

// FieldErrors maps a field name to its validation message.
type FieldErrors map[string]string

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	minSummaryLen = 50
	minPhoneLen   = 10
	// MaxResumeSize caps uploaded resumes at 5MB.
	MaxResumeSize = 5 * 1024 * 1024
)

// AcceptedResumeMIMEs is the set of resume content types the documents
// step accepts.
var AcceptedResumeMIMEs = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

type PersonalInfo struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`
	Summary     string `json:"summary"`
}

func (p PersonalInfo) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(p.FirstName) == "" {
		errs["firstName"] = "first name is required"
	}
	if strings.TrimSpace(p.LastName) == "" {
		errs["lastName"] = "last name is required"
	}
	if !emailRe.MatchString(p.Email) {
		errs["email"] = "a valid email address is required"
	}
	if len(digitsOf(p.Phone)) < minPhoneLen {
		errs["phone"] = "phone number must have at least 10 digits"
	}
	if strings.TrimSpace(p.Nationality) == "" {
		errs["nationality"] = "nationality is required"
	}
	if len(strings.TrimSpace(p.Summary)) < minSummaryLen {
		errs["summary"] = "summary must be at least 50 characters"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

type WorkHistoryEntry struct {
	JobTitle    string `json:"jobTitle"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

func (e WorkHistoryEntry) complete() bool {
	for _, v := range []string{e.JobTitle, e.Company, e.Location, e.StartDate, e.Description} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

type Experience struct {
	Entries []WorkHistoryEntry `json:"entries"`
	Skills  string             `json:"skills"`
}

func (e Experience) Validate() FieldErrors {
	errs := FieldErrors{}
	if len(e.Entries) == 0 {
		errs["entries"] = "at least one work history entry is required"
	}
	for _, entry := range e.Entries {
		if !entry.complete() {
			errs["entries"] = "every work history entry needs a job title, company, location, start date and description"
			break
		}
	}
	if strings.TrimSpace(e.Skills) == "" {
		errs["skills"] = "skills are required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Documents carries upload metadata only; file bytes are stored by the
// handler before the step is submitted.
type Documents struct {
	ResumePath  string   `json:"resumePath"`
	ResumeSize  int64    `json:"resumeSize"`
	ResumeMIME  string   `json:"resumeMime"`
	CoverLetter string   `json:"coverLetter"`
	ExtraPaths  []string `json:"extraPaths"`
}

func (d Documents) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(d.ResumePath) == "" {
		errs["resume"] = "resume is required"
	} else if d.ResumeSize > MaxResumeSize {
		errs["resume"] = "resume must be 5MB or smaller"
	} else if !AcceptedResumeMIMEs[d.ResumeMIME] {
		errs["resume"] = "resume must be a PDF or Word document"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
