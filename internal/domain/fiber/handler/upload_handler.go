package handler

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/yohanvishvajith/sintravels-sub000/internal/config"
	"github.com/yohanvishvajith/sintravels-sub000/internal/util"
)

const maxUploadSize = 5 * 1024 * 1024

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// saveUpload writes an uploaded file into dir with a timestamp-prefixed
// sanitized filename and returns its public URL path.
func saveUpload(c *fiber.Ctx, file *multipart.FileHeader, dir, publicBase string) (string, error) {
	if file.Size > maxUploadSize {
		return "", util.NewValidationError("file", "file size is too large (max 5MB)")
	}
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), unsafeFilenameChars.ReplaceAllString(filepath.Base(file.Filename), "-"))
	if err := c.SaveFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return publicBase + "/" + name, nil
}

type UploadHandler struct {
	cfg *config.UploadConfig
}

func NewUploadHandler() *UploadHandler {
	return &UploadHandler{cfg: config.LoadUploadConfig()}
}

func (h *UploadHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/admin/uploads", h.UploadFlag)
}

// UploadFlag stores a country flag image under public static storage.
func (h *UploadHandler) UploadFlag(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "file is required", err)
	}
	url, err := saveUpload(c, file, h.cfg.FlagDir, h.cfg.PublicURL+"/flags")
	if err != nil {
		return util.FailFromError(c, err)
	}
	return util.SuccessResponse(c, fiber.StatusOK, fiber.Map{"url": url})
}
