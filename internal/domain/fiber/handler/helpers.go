package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tidwall/gjson"
)

func gjsonBody(c *fiber.Ctx, path string) gjson.Result {
	return gjson.GetBytes(c.Body(), path)
}
