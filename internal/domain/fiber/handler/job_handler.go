package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohanvishvajith/sintravels-sub000/internal/usecase"
	"github.com/yohanvishvajith/sintravels-sub000/internal/util"
)

type JobHandler struct {
	uc *usecase.JobUsecase
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/jobs", h.List)

	app.Get("/api/admin/jobs", h.AdminList)
	app.Post("/api/admin/jobs", h.Create)
	app.Put("/api/admin/jobs", h.Update)
	app.Delete("/api/admin/jobs", h.Delete)
	app.Get("/api/admin/jobs/:id/benefits", h.BenefitLinks)
}

// List serves the public listing: the bounded, newest-first job set the
// client filters and paginates locally.
func (h *JobHandler) List(c *fiber.Ctx) error {
	jobs, err := h.uc.PublicList()
	if err != nil {
		log.Error().Err(err).Msg("job list failed")
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load jobs", err)
	}
	return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{"jobs": jobs})
}

// AdminList serves both partitions of the same fetched set.
func (h *JobHandler) AdminList(c *fiber.Ctx) error {
	active, expired, err := h.uc.AdminList()
	if err != nil {
		log.Error().Err(err).Msg("admin job list failed")
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load jobs", err)
	}
	return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{"active": active, "expired": expired})
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	job, err := h.uc.Create(c.Body())
	if err != nil {
		return util.FailFromError(c, err)
	}
	return util.SuccessResponse(c, fiber.StatusCreated, fiber.Map{"job": job})
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	job, err := h.uc.Update(c.Body())
	if err != nil {
		return util.FailFromError(c, err)
	}
	return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{"job": job})
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		id = util.TrimmedString(gjsonBody(c, "id"))
	}
	if err := h.uc.Delete(id); err != nil {
		return util.FailFromError(c, err)
	}
	return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{})
}

func (h *JobHandler) BenefitLinks(c *fiber.Ctx) error {
	ids, err := h.uc.BenefitLinkIDs(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load benefits", err)
	}
	return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{"benefitIds": ids})
}
