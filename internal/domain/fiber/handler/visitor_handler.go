package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohanvishvajith/sintravels-sub000/internal/usecase"
	"github.com/yohanvishvajith/sintravels-sub000/internal/util"
)

type VisitorHandler struct {
	uc        *usecase.VisitorUsecase
	dashboard *usecase.DashboardUsecase
}

func NewVisitorHandler(uc *usecase.VisitorUsecase, dashboard *usecase.DashboardUsecase) *VisitorHandler {
	return &VisitorHandler{uc: uc, dashboard: dashboard}
}

func (h *VisitorHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/visitors/track", h.Track)
	app.Get("/api/admin/visitors", h.Counts)
	app.Get("/api/admin/stats", h.Stats)
}

func (h *VisitorHandler) Track(c *fiber.Ctx) error {
	page := util.TrimmedString(gjsonBody(c, "page"))
	referrer := util.TrimmedString(gjsonBody(c, "referrer"))
	if err := h.uc.Track(c.IP(), c.Get("User-Agent"), page, referrer); err != nil {
		log.Error().Err(err).Msg("visitor track failed")
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to track visit", err)
	}
	return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{})
}

func (h *VisitorHandler) Counts(c *fiber.Ctx) error {
	counts, err := h.uc.Counts()
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load visitor counts", err)
	}
	return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{"visitors": counts})
}

func (h *VisitorHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.dashboard.Stats()
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load stats", err)
	}
	return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{"stats": stats})
}
