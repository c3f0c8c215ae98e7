package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yohanvishvajith/sintravels-sub000/internal/usecase"
	"github.com/yohanvishvajith/sintravels-sub000/internal/util"
)

type ReferenceHandler struct {
	uc *usecase.ReferenceUsecase
}

func NewReferenceHandler(uc *usecase.ReferenceUsecase) *ReferenceHandler {
	return &ReferenceHandler{uc: uc}
}

func (h *ReferenceHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/admin/countries", h.ListCountries)
	app.Post("/api/admin/countries", h.CreateCountry)
	app.Put("/api/admin/countries", h.UpdateCountry)
	app.Delete("/api/admin/countries", h.DeleteCountry)

	app.Get("/api/admin/industries", h.ListIndustries)
	app.Post("/api/admin/industries", h.CreateIndustry)
	app.Put("/api/admin/industries", h.UpdateIndustry)
	app.Delete("/api/admin/industries", h.DeleteIndustry)

	app.Get("/api/admin/benefits", h.ListBenefits)
	app.Post("/api/admin/benefits", h.CreateBenefit)
	app.Put("/api/admin/benefits", h.UpdateBenefit)
	app.Delete("/api/admin/benefits", h.DeleteBenefit)
}

func (h *ReferenceHandler) refID(c *fiber.Ctx) string {
	if id := c.Query("id"); id != "" {
		return id
	}
	return util.TrimmedString(gjsonBody(c, "id"))
}

func (h *ReferenceHandler) ListCountries(c *fiber.Ctx) error {
	countries, err := h.uc.ListCountries()
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load countries", err)
	}
	return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{"countries": countries})
}

func (h *ReferenceHandler) CreateCountry(c *fiber.Ctx) error {
	country, err := h.uc.SaveCountry("", util.TrimmedString(gjsonBody(c, "name")), util.TrimmedString(gjsonBody(c, "flagimg")), false)
	if err != nil {
		return util.FailFromError(c, err)
	}
	return util.SuccessResponse(c, fiber.StatusCreated, fiber.Map{"country": country})
}

func (h *ReferenceHandler) UpdateCountry(c *fiber.Ctx) error {
	country, err := h.uc.SaveCountry(h.refID(c), util.TrimmedString(gjsonBody(c, "name")), util.TrimmedString(gjsonBody(c, "flagimg")), true)
	if err != nil {
		return util.FailFromError(c, err)
	}
	return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{"country": country})
}

func (h *ReferenceHandler) DeleteCountry(c *fiber.Ctx) error {
	if err := h.uc.DeleteCountry(h.refID(c)); err != nil {
		return util.FailFromError(c, err)
	}
	return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{})
}

func (h *ReferenceHandler) ListIndustries(c *fiber.Ctx) error {
	industries, err := h.uc.ListIndustries()
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load industries", err)
	}
	return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{"industries": industries})
}

func (h *ReferenceHandler) CreateIndustry(c *fiber.Ctx) error {
	industry, err := h.uc.SaveIndustry("", util.TrimmedString(gjsonBody(c, "name")), false)
	if err != nil {
		return util.FailFromError(c, err)
	}
	return util.SuccessResponse(c, fiber.StatusCreated, fiber.Map{"industry": industry})
}

func (h *ReferenceHandler) UpdateIndustry(c *fiber.Ctx) error {
	industry, err := h.uc.SaveIndustry(h.refID(c), util.TrimmedString(gjsonBody(c, "name")), true)
	if err != nil {
		return util.FailFromError(c, err)
	}
	return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{"industry": industry})
}

func (h *ReferenceHandler) DeleteIndustry(c *fiber.Ctx) error {
	if err := h.uc.DeleteIndustry(h.refID(c)); err != nil {
		return util.FailFromError(c, err)
	}
	return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{})
}

func (h *ReferenceHandler) ListBenefits(c *fiber.Ctx) error {
	benefits, err := h.uc.ListBenefits()
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load benefits", err)
	}
	return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{"benefits": benefits})
}

func (h *ReferenceHandler) CreateBenefit(c *fiber.Ctx) error {
	benefit, err := h.uc.SaveBenefit("", util.TrimmedString(gjsonBody(c, "name")), false)
	if err != nil {
		return util.FailFromError(c, err)
	}
	return util.SuccessResponse(c, fiber.StatusCreated, fiber.Map{"benefit": benefit})
}

func (h *ReferenceHandler) UpdateBenefit(c *fiber.Ctx) error {
	benefit, err := h.uc.SaveBenefit(h.refID(c), util.TrimmedString(gjsonBody(c, "name")), true)
	if err != nil {
		return util.FailFromError(c, err)
	}
	return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{"benefit": benefit})
}

func (h *ReferenceHandler) DeleteBenefit(c *fiber.Ctx) error {
	if err := h.uc.DeleteBenefit(h.refID(c)); err != nil {
		return util.FailFromError(c, err)
	}
	return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{})
}
