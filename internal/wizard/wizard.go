package wizard

import (
	"errors"
	"fmt"
)

// Step is a state of the application wizard. The flow is strictly
// linear: PersonalInfo → Experience → Documents → Review → Success.
// Forward movement requires the current step's validation to pass;
// backward movement is always allowed except out of Success, which is
// terminal.
type Step string

const (
	StepPersonalInfo Step = "PERSONAL_INFO"
	StepExperience   Step = "EXPERIENCE"
	StepDocuments    Step = "DOCUMENTS"
	StepReview       Step = "REVIEW"
	StepSuccess      Step = "SUCCESS"
)

var order = []Step{StepPersonalInfo, StepExperience, StepDocuments, StepReview, StepSuccess}

func ParseStep(s string) (Step, error) {
	for _, st := range order {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown wizard step: %q", s)
}

func indexOf(s Step) int {
	for i, st := range order {
		if st == s {
			return i
		}
	}
	return -1
}

var (
	ErrWrongStep  = errors.New("submitted data does not belong to the current step")
	ErrTerminal   = errors.New("wizard already completed")
	ErrAtStart    = errors.New("cannot go back from the first step")
	ErrNotReview  = errors.New("submission is only allowed from the review step")
	ErrValidation = errors.New("step validation failed")
)

// Application accumulates validated step data keyed by step. A nil
// section means the step has not passed validation yet.
type Application struct {
	PersonalInfo *PersonalInfo
	Experience   *Experience
	Documents    *Documents
}

// Wizard is one in-flight application. All state lives in memory for
// the duration of the session.
type Wizard struct {
	JobID string
	State Step
	Data  Application
}

func New(jobID string) *Wizard {
	return &Wizard{JobID: jobID, State: StepPersonalInfo}
}

// advance moves one step forward after a successful merge.
func (w *Wizard) advance() {
	if i := indexOf(w.State); i >= 0 && i < len(order)-1 {
		w.State = order[i+1]
	}
}

// Back moves one step backward. Not allowed from the first step or once
// the wizard has reached Success.
func (w *Wizard) Back() error {
	if w.State == StepSuccess {
		return ErrTerminal
	}
	i := indexOf(w.State)
	if i <= 0 {
		return ErrAtStart
	}
	w.State = order[i-1]
	return nil
}

// SubmitPersonalInfo validates and merges the first step. On validation
// failure nothing is merged and the field errors are returned.
func (w *Wizard) SubmitPersonalInfo(p PersonalInfo) (FieldErrors, error) {
	if w.State == StepSuccess {
		return nil, ErrTerminal
	}
	if w.State != StepPersonalInfo {
		return nil, ErrWrongStep
	}
	if errs := p.Validate(); len(errs) > 0 {
		return errs, ErrValidation
	}
	w.Data.PersonalInfo = &p
	w.advance()
	return nil, nil
}

func (w *Wizard) SubmitExperience(e Experience) (FieldErrors, error) {
	if w.State == StepSuccess {
		return nil, ErrTerminal
	}
	if w.State != StepExperience {
		return nil, ErrWrongStep
	}
	if errs := e.Validate(); len(errs) > 0 {
		return errs, ErrValidation
	}
	w.Data.Experience = &e
	w.advance()
	return nil, nil
}

func (w *Wizard) SubmitDocuments(d Documents) (FieldErrors, error) {
	if w.State == StepSuccess {
		return nil, ErrTerminal
	}
	if w.State != StepDocuments {
		return nil, ErrWrongStep
	}
	if errs := d.Validate(); len(errs) > 0 {
		return errs, ErrValidation
	}
	w.Data.Documents = &d
	w.advance()
	return nil, nil
}

// Complete moves Review → Success. The caller performs the actual
// submission first; once completed the wizard accepts no transition.
func (w *Wizard) Complete() error {
	if w.State == StepSuccess {
		return ErrTerminal
	}
	if w.State != StepReview {
		return ErrNotReview
	}
	w.State = StepSuccess
	return nil
}
