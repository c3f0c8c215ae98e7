package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohanvishvajith/sintravels-sub000/internal/config"
	"github.com/yohanvishvajith/sintravels-sub000/internal/usecase"
	"github.com/yohanvishvajith/sintravels-sub000/internal/util"
)

type ApplyHandler struct {
	uc        *usecase.ApplicationUsecase
	uploadCfg *config.UploadConfig
}

func NewApplyHandler(uc *usecase.ApplicationUsecase) *ApplyHandler {
	return &ApplyHandler{uc: uc, uploadCfg: config.LoadUploadConfig()}
}

func (h *ApplyHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/apply", h.Apply)
	app.Get("/api/apply/check", h.Check)
	app.Get("/api/admin/applicants", h.AdminList)
}

func (h *ApplyHandler) Apply(c *fiber.Ctx) error {
	in := usecase.ApplyInput{
		JobID:     c.FormValue("jobId"),
		UserID:    c.FormValue("userId"),
		CoverNote: c.FormValue("coverNote"),
	}
	if in.UserID == "" {
		in.UserID = c.Get("X-User-Id")
	}
	if file, err := c.FormFile("resume"); err == nil {
		url, err := saveUpload(c, file, h.uploadCfg.ResumeDir, h.uploadCfg.PublicURL+"/resumes")
		if err != nil {
			return util.FailFromError(c, err)
		}
		in.ResumePath = url
	}

	applicant, already, err := h.uc.Apply(in)
	if err != nil {
		log.Error().Err(err).Str("jobId", in.JobID).Msg("application failed")
		return util.FailFromError(c, err)
	}
	if already {
		return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{"note": "already_applied"})
	}
	return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{"applicant": applicant})
}

func (h *ApplyHandler) Check(c *fiber.Ctx) error {
	applied, err := h.uc.HasApplied(c.Query("userId"), c.Query("jobId"))
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to check application", err)
	}
	return c.JSON(fiber.Map{"applied": applied})
}

func (h *ApplyHandler) AdminList(c *fiber.Ctx) error {
	applicants, err := h.uc.List()
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load applicants", err)
	}
	return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{"applicants": applicants})
}
