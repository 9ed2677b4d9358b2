package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"admissions-portal/internal/domain"
)

// DirectoryLister is the read-only slice of the directory the public
// listings need.
type DirectoryLister interface {
	ListSchools(ctx context.Context) ([]domain.School, error)
	ListClassesBySchool(ctx context.Context, schoolID string) ([]domain.Class, error)
}

type DirectoryHandler struct {
	directory DirectoryLister
}

func NewDirectoryHandler(directory DirectoryLister) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

func (h *DirectoryHandler) ListSchools(c *fiber.Ctx) error {
	schools, err := h.directory.ListSchools(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": schools,
	})
}

func (h *DirectoryHandler) ListClasses(c *fiber.Ctx) error {
	classes, err := h.directory.ListClassesBySchool(c.Context(), c.Params("schoolId"))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": classes,
	})
}
