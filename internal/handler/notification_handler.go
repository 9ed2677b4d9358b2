package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"admissions-portal/internal/domain"
	"admissions-portal/internal/middleware"
	"admissions-portal/internal/service/notification"
)

type NotificationHandler struct {
	notifService notification.Service
}

func NewNotificationHandler(notifService notification.Service) *NotificationHandler {
	return &NotificationHandler{notifService: notifService}
}

// notificationUser resolves the addressee: staff can consult a specific
// applicant's log through the user_id query, everyone else reads their own.
func notificationUser(c *fiber.Ctx) string {
	if userID := c.Query("user_id"); userID != "" {
		user := middleware.GetCurrentUser(c)
		if user != nil && user.Role != domain.RoleStudent {
			return userID
		}
	}
	return middleware.GetCurrentUserID(c)
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	unreadOnly := c.Query("unread_only") == "true"

	result, err := h.notifService.List(c.Context(), notificationUser(c), unreadOnly, getPaginationParams(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *NotificationHandler) GetUnreadCount(c *fiber.Ctx) error {
	count, err := h.notifService.CountUnread(c.Context(), notificationUser(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"count": count,
	})
}

func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	if err := h.notifService.MarkAsRead(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return middleware.NotFound("Notification not found")
		}
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *NotificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	if err := h.notifService.MarkAllAsRead(c.Context(), notificationUser(c)); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
