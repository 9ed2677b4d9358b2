package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"admissions-portal/internal/domain"
	"admissions-portal/internal/middleware"
	"admissions-portal/internal/service/application"
	"admissions-portal/internal/service/workflow"
)

type ApplicationHandler struct {
	appService      application.Service
	workflowService workflow.Service
}

func NewApplicationHandler(appService application.Service, workflowService workflow.Service) *ApplicationHandler {
	return &ApplicationHandler{
		appService:      appService,
		workflowService: workflowService,
	}
}

func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateApplicationInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if err := validate.Struct(input); err != nil {
		return middleware.BadRequest(err.Error())
	}

	app, err := h.appService.Create(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(app)
}

func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	filter := domain.ApplicationFilter{
		SchoolID: c.Query("school_id"),
		ClassID:  c.Query("class_id"),
		Search:   c.Query("search"),
	}
	if status := c.Query("status"); status != "" {
		s := domain.ApplicationStatus(status)
		filter.Status = &s
	}

	result, err := h.appService.List(c.Context(), filter, getPaginationParams(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *ApplicationHandler) Get(c *fiber.Ctx) error {
	app, err := h.appService.GetByID(c.Context(), c.Params("applicationId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return middleware.NotFound("Application not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(app)
}

func (h *ApplicationHandler) GetIssues(c *fiber.Ctx) error {
	issues, err := h.appService.CheckIssues(c.Context(), c.Params("applicationId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return middleware.NotFound("Application not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(issues)
}

func (h *ApplicationHandler) AddDocument(c *fiber.Ctx) error {
	var input domain.AddDocumentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if err := validate.Struct(input); err != nil {
		return middleware.BadRequest(err.Error())
	}

	app, err := h.appService.AddDocument(c.Context(), c.Params("applicationId"), input)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return middleware.NotFound("Application not found")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(app)
}

// Submit runs the completeness gate and routes the application to its
// director. A gate failure answers 422 with the issue payload verbatim so
// the agent knows what to fix.
func (h *ApplicationHandler) Submit(c *fiber.Ctx) error {
	app, err := h.workflowService.SubmitToValidate(c.Context(), c.Params("applicationId"), middleware.GetCurrentUserID(c))
	if err != nil {
		var issuesErr *domain.DocumentIssuesError
		if errors.As(err, &issuesErr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"code":    "DOCUMENT_ISSUES",
				"message": "The application file is incomplete or non-conforming",
				"issues":  issuesErr.Issues,
			})
		}
		if errors.Is(err, workflow.ErrAlreadySubmitted) {
			return middleware.Conflict("Application has already been submitted")
		}
		if errors.Is(err, domain.ErrNotFound) {
			return middleware.NotFound("Application not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(app)
}

func (h *ApplicationHandler) MarkIncomplete(c *fiber.Ctx) error {
	var input struct {
		MissingDocument string `json:"missing_document"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	app, err := h.workflowService.MarkIncomplete(c.Context(), c.Params("applicationId"), input.MissingDocument, middleware.GetCurrentUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrEmptyInput) {
			return middleware.BadRequest("Missing document description is required")
		}
		if errors.Is(err, domain.ErrNotFound) {
			return middleware.NotFound("Application not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(app)
}

func (h *ApplicationHandler) Validate(c *fiber.Ctx) error {
	app, err := h.workflowService.Validate(c.Context(), c.Params("applicationId"), middleware.GetCurrentUserID(c))
	if err != nil {
		return decisionError(err)
	}

	return c.Status(fiber.StatusOK).JSON(app)
}

func (h *ApplicationHandler) Reject(c *fiber.Ctx) error {
	var input struct {
		Reason string `json:"reason"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	app, err := h.workflowService.Reject(c.Context(), c.Params("applicationId"), middleware.GetCurrentUserID(c), input.Reason)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyInput) {
			return middleware.BadRequest("Rejection reason is required")
		}
		return decisionError(err)
	}

	return c.Status(fiber.StatusOK).JSON(app)
}

func decisionError(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return middleware.NotFound("Application not found")
	}
	if errors.Is(err, workflow.ErrNotAwaitingDecision) {
		return middleware.Conflict("Application is not awaiting a decision")
	}
	return err
}
