package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohanvishvajith/sintravels-sub000/internal/service"
	"github.com/yohanvishvajith/sintravels-sub000/internal/util"
)

type ContactHandler struct {
	mail service.MailServiceInterface
}

func NewContactHandler(mail service.MailServiceInterface) *ContactHandler {
	return &ContactHandler{mail: mail}
}

func (h *ContactHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/contact", h.Contact)
}

func (h *ContactHandler) Contact(c *fiber.Ctx) error {
	form := service.ContactForm{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Phone:   c.FormValue("phone"),
		Company: c.FormValue("company"),
		Service: c.FormValue("service"),
		Message: c.FormValue("message"),
	}
	if form.Name == "" || form.Email == "" || form.Message == "" {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "name, email and message are required")
	}
	if err := h.mail.SendContactMail(form); err != nil {
		log.Error().Err(err).Msg("contact mail failed")
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to send message", err)
	}
	return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{})
}
