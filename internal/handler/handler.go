package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"admissions-portal/internal/domain"
	"admissions-portal/internal/service"
)

var validate = validator.New()

type Handlers struct {
	Auth         *AuthHandler
	Application  *ApplicationHandler
	Inbox        *InboxHandler
	Notification *NotificationHandler
	Export       *ExportHandler
	Directory    *DirectoryHandler
}

func NewHandlers(services *service.Services, directory DirectoryLister) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		Application:  NewApplicationHandler(services.Application, services.Workflow),
		Inbox:        NewInboxHandler(services.Inbox),
		Notification: NewNotificationHandler(services.Notification),
		Export:       NewExportHandler(services.Export),
		Directory:    NewDirectoryHandler(directory),
	}
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.PaginationParams{Page: 1, PageSize: 20}

	if page := c.QueryInt("page", 1); page > 0 {
		params.Page = page
	}
	if pageSize := c.QueryInt("page_size", 20); pageSize > 0 {
		params.PageSize = pageSize
	}

	params.Validate()
	return params
}
