package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohanvishvajith/sintravels-sub000/internal/auth"
	"github.com/yohanvishvajith/sintravels-sub000/internal/config"
	"github.com/yohanvishvajith/sintravels-sub000/internal/dto"
	"github.com/yohanvishvajith/sintravels-sub000/internal/usecase"
	"github.com/yohanvishvajith/sintravels-sub000/internal/util"
)

type AuthHandler struct {
	uc        *usecase.AuthUsecase
	uploadCfg *config.UploadConfig
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc, uploadCfg: config.LoadUploadConfig()}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/login", h.Login)
	app.Post("/api/logout", h.Logout)
	app.Post("/api/register", h.Register)
	app.Get("/api/user/me", h.Me)
	app.Get("/api/users", h.Users)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	if username == "" || password == "" {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "username and password are required")
	}

	user, token, err := h.uc.Login(username, password)
	if err == usecase.ErrInvalidCredentials {
		return util.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err != nil {
		log.Error().Err(err).Msg("login failed")
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Login failed", err)
	}

	h.setAuthCookie(c, token)
	return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"user":  dto.NewSafeUser(user),
		"token": token,
	})
}

// setAuthCookie makes the cookie the sole server-trusted session
// bearer: HTTP-only, lax, site-wide, lifetime matching the token.
func (h *AuthHandler) setAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     config.LoadAuthConfig().CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.TokenTTL.Seconds()),
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   config.LoadAppConfig().Env == "production",
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     config.LoadAuthConfig().CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	in := usecase.RegisterInput{
		Username:        c.FormValue("username"),
		Email:           c.FormValue("email"),
		Password:        c.FormValue("password"),
		ConfirmPassword: c.FormValue("confirmPassword"),
		Address:         c.FormValue("address"),
	}
	if file, err := c.FormFile("profilePhoto"); err == nil {
		url, err := saveUpload(c, file, h.uploadCfg.PhotoDir, h.uploadCfg.PublicURL+"/photos")
		if err != nil {
			return util.FailFromError(c, err)
		}
		in.ProfilePhoto = url
	}

	user, err := h.uc.Register(in)
	if err != nil {
		return util.FailFromError(c, err)
	}
	return util.SuccessResponse(c, fiber.StatusCreated, fiber.Map{"user": dto.NewSafeUser(user)})
}

// Me resolves the current user from the gate-injected id; the gate has
// already verified the cookie.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID := c.Get("X-User-Id")
	if userID == "" {
		return util.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	user, err := h.uc.Me(userID)
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized", err)
	}
	return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{"user": dto.NewSafeUser(user)})
}

func (h *AuthHandler) Users(c *fiber.Ctx) error {
	users, err := h.uc.Users()
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load users", err)
	}
	safe := make([]dto.SafeUser, 0, len(users))
	for i := range users {
		safe = append(safe, dto.NewSafeUser(&users[i]))
	}
	return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{"users": safe})
}
