package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/yohanvishvajith/sintravels-sub000/internal/config"
	"github.com/yohanvishvajith/sintravels-sub000/internal/usecase"
	"github.com/yohanvishvajith/sintravels-sub000/internal/util"
	"github.com/yohanvishvajith/sintravels-sub000/internal/wizard"
)

// WizardHandler drives the multi-step application flow. Each session
// lives in memory; the terminal submit funnels into the same
// application path as the plain apply endpoint.
type WizardHandler struct {
	store     *wizard.Store
	apply     *usecase.ApplicationUsecase
	uploadCfg *config.UploadConfig
}

func NewWizardHandler(store *wizard.Store, apply *usecase.ApplicationUsecase) *WizardHandler {
	return &WizardHandler{store: store, apply: apply, uploadCfg: config.LoadUploadConfig()}
}

func (h *WizardHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/apply/wizard", h.Start)
	app.Get("/api/apply/wizard/:id", h.State)
	app.Post("/api/apply/wizard/:id/personal-info", h.PersonalInfo)
	app.Post("/api/apply/wizard/:id/experience", h.Experience)
	app.Post("/api/apply/wizard/:id/documents", h.Documents)
	app.Post("/api/apply/wizard/:id/back", h.Back)
	app.Post("/api/apply/wizard/:id/submit", h.Submit)
}

func (h *WizardHandler) Start(c *fiber.Ctx) error {
	jobID := util.TrimmedString(gjsonBody(c, "jobId"))
	if jobID == "" {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "jobId is required")
	}
	id, w := h.store.Start(jobID)
	return util.SuccessResponse(c, fiber.StatusCreated, fiber.Map{"id": id, "state": w.State})
}

func (h *WizardHandler) session(c *fiber.Ctx) (*wizard.Wizard, error) {
	return h.store.Get(c.Params("id"))
}

func (h *WizardHandler) State(c *fiber.Ctx) error {
	w, err := h.session(c)
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusNotFound, "wizard session not found")
	}
	return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{"state": w.State})
}

// stepResult maps step outcomes to responses: field errors are 400s
// carrying the per-field messages, out-of-order submissions are 409s.
func stepResult(c *fiber.Ctx, w *wizard.Wizard, fieldErrs wizard.FieldErrors, err error) error {
	switch {
	case err == nil:
		return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{"state": w.State})
	case errors.Is(err, wizard.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok": false, "error": "validation failed", "fields": fieldErrs,
		})
	case errors.Is(err, wizard.ErrTerminal):
		return util.ErrorResponse(c, fiber.StatusConflict, "application already submitted")
	default:
		return util.ErrorResponse(c, fiber.StatusConflict, err.Error())
	}
}

func (h *WizardHandler) PersonalInfo(c *fiber.Ctx) error {
	w, err := h.session(c)
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusNotFound, "wizard session not found")
	}
	var p wizard.PersonalInfo
	if err := c.BodyParser(&p); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "invalid payload", err)
	}
	fieldErrs, err := w.SubmitPersonalInfo(p)
	return stepResult(c, w, fieldErrs, err)
}

func (h *WizardHandler) Experience(c *fiber.Ctx) error {
	w, err := h.session(c)
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusNotFound, "wizard session not found")
	}
	var e wizard.Experience
	if err := c.BodyParser(&e); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "invalid payload", err)
	}
	fieldErrs, err := w.SubmitExperience(e)
	return stepResult(c, w, fieldErrs, err)
}

func (h *WizardHandler) Documents(c *fiber.Ctx) error {
	w, err := h.session(c)
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusNotFound, "wizard session not found")
	}

	d := wizard.Documents{CoverLetter: c.FormValue("coverLetter")}
	if file, err := c.FormFile("resume"); err == nil {
		d.ResumeSize = file.Size
		d.ResumeMIME = file.Header.Get("Content-Type")
		if wizard.AcceptedResumeMIMEs[d.ResumeMIME] && file.Size <= wizard.MaxResumeSize {
			path, err := saveUpload(c, file, h.uploadCfg.ResumeDir, h.uploadCfg.PublicURL+"/resumes")
			if err != nil {
				return util.FailFromError(c, err)
			}
			d.ResumePath = path
		} else {
			// keep metadata so validation reports the precise reason
			d.ResumePath = file.Filename
		}
	}

	fieldErrs, err := w.SubmitDocuments(d)
	return stepResult(c, w, fieldErrs, err)
}

func (h *WizardHandler) Back(c *fiber.Ctx) error {
	w, err := h.session(c)
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusNotFound, "wizard session not found")
	}
	if err := w.Back(); err != nil {
		return util.ErrorResponse(c, fiber.StatusConflict, err.Error())
	}
	return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{"state": w.State})
}

// Submit is the single terminal action: jobId plus the accumulated data
// become one application, then the wizard reaches Success and cannot be
// re-entered.
func (h *WizardHandler) Submit(c *fiber.Ctx) error {
	id := c.Params("id")
	w, err := h.store.Get(id)
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusNotFound, "wizard session not found")
	}
	if w.State != wizard.StepReview {
		return util.ErrorResponse(c, fiber.StatusConflict, "submission is only allowed from the review step")
	}

	in := usecase.ApplyInput{
		JobID:  w.JobID,
		UserID: c.Get("X-User-Id"),
	}
	if w.Data.Documents != nil {
		in.CoverNote = w.Data.Documents.CoverLetter
		in.ResumePath = w.Data.Documents.ResumePath
	}
	applicant, already, err := h.apply.Apply(in)
	if err != nil {
		return util.FailFromError(c, err)
	}
	if err := w.Complete(); err != nil {
		return util.ErrorResponse(c, fiber.StatusConflict, err.Error())
	}
	h.store.Remove(id)

	if already {
		return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{"state": w.State, "note": "already_applied"})
	}
	return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{"state": w.State, "applicant": applicant})
}
