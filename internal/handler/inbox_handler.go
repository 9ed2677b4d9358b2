package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"admissions-portal/internal/domain"
	"admissions-portal/internal/middleware"
	"admissions-portal/internal/service/inbox"
)

type InboxHandler struct {
	inboxService inbox.Service
}

func NewInboxHandler(inboxService inbox.Service) *InboxHandler {
	return &InboxHandler{inboxService: inboxService}
}

func (h *InboxHandler) List(c *fiber.Ctx) error {
	entries, err := h.inboxService.ListForDirector(c.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": entries,
	})
}

func (h *InboxHandler) MarkAsRead(c *fiber.Ctx) error {
	if err := h.inboxService.MarkAsRead(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return middleware.NotFound("Inbox entry not found")
		}
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
