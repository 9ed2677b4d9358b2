package workflow

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"admissions-portal/internal/domain"
	"admissions-portal/internal/service/completeness"
	"admissions-portal/internal/service/inbox"
	"admissions-portal/internal/service/notification"
)

var (
	// ErrAlreadySubmitted is returned when an agent submits an application
	// that is no longer pending. Resubmission would reopen a decided file
	// or duplicate its director inbox entry.
	ErrAlreadySubmitted = errors.New("application has already been submitted")

	// ErrNotAwaitingDecision is returned when a director acts on an
	// application that is not in the to_validate state. Validated and
	// rejected are terminal: no operation here mutates them further.
	ErrNotAwaitingDecision = errors.New("application is not awaiting a decision")
)

// Store is the slice of the record store the workflow mutates through.
// UpdateApplication is the only mutation primitive; every transition
// funnels through it, and its status precondition runs inside the same
// atomic step as the write.
type Store interface {
	UpdateApplication(ctx context.Context, id string, mutate func(app *domain.Application) error) (*domain.Application, error)
}

// Directory resolves an application's school to its assigned director.
type Directory interface {
	GetSchoolByID(ctx context.Context, id string) (*domain.School, error)
}

// Mailer delivers decision and missing-document messages. Delivery is
// best-effort with no retry; the workflow never fails on a mailer error.
type Mailer interface {
	SendDecisionEmail(ctx context.Context, toEmail, applicantName string, status domain.ApplicationStatus, reason string) error
	SendMissingDocumentEmail(ctx context.Context, toEmail, applicantName, missing string) error
}

// Exporter regenerates the spreadsheet for a class after a validation.
type Exporter interface {
	GenerateForClass(ctx context.Context, classID string) (string, error)
}

// Service drives the application lifecycle: pending → to_validate →
// {validated | rejected}. Transitions commit through the record store
// first; notifications, inbox bookkeeping, email and export run strictly
// after the committed mutation and never roll it back.
type Service interface {
	SubmitToValidate(ctx context.Context, applicationID, agentID string) (*domain.Application, error)
	MarkIncomplete(ctx context.Context, applicationID, missingDocument, agentID string) (*domain.Application, error)
	Validate(ctx context.Context, applicationID, directorID string) (*domain.Application, error)
	Reject(ctx context.Context, applicationID, directorID, reason string) (*domain.Application, error)
	ClearInbox(ctx context.Context, applicationID string) error
}

type service struct {
	store     Store
	directory Directory
	inboxSvc  inbox.Service
	notifSvc  notification.Service
	mailer    Mailer
	exporter  Exporter
}

func NewService(
	st Store,
	directory Directory,
	inboxSvc inbox.Service,
	notifSvc notification.Service,
	mailer Mailer,
	exporter Exporter,
) Service {
	return &service{
		store:     st,
		directory: directory,
		inboxSvc:  inboxSvc,
		notifSvc:  notifSvc,
		mailer:    mailer,
		exporter:  exporter,
	}
}

// SubmitToValidate runs the completeness gate and, when it passes, moves the
// application from pending to to_validate and routes it to the responsible
// director. Only pending applications can be submitted: a decided file stays
// decided, and an already-routed file keeps its single inbox entry. On gate
// failure nothing is mutated and the issue payload is returned to the acting
// agent. No student notification is emitted at this step.
func (s *service) SubmitToValidate(ctx context.Context, applicationID, agentID string) (*domain.Application, error) {
	updated, err := s.store.UpdateApplication(ctx, applicationID, func(app *domain.Application) error {
		if app.Status != domain.StatusPending {
			return ErrAlreadySubmitted
		}
		if issues := completeness.CheckIssues(app); issues.HasIssues() {
			return &domain.DocumentIssuesError{Issues: issues}
		}
		app.Status = domain.StatusToValidate
		return nil
	})
	if err != nil {
		return nil, err
	}

	var directorID *string
	if school, err := s.directory.GetSchoolByID(ctx, updated.SchoolID); err == nil {
		directorID = school.DirectorID
	} else if !errors.Is(err, domain.ErrNotFound) {
		log.Printf("workflow: resolve school %s: %v", updated.SchoolID, err)
	}

	var agent *string
	if agentID != "" {
		agent = &agentID
	}
	if _, err := s.inboxSvc.Add(ctx, applicationID, updated.SchoolID, directorID, agent); err != nil {
		log.Printf("workflow: route application %s to director inbox: %v", applicationID, err)
	}

	return updated, nil
}

// MarkIncomplete records the agent's missing-document note without changing
// the application status, and warns the applicant.
func (s *service) MarkIncomplete(ctx context.Context, applicationID, missingDocument, agentID string) (*domain.Application, error) {
	missingDocument = strings.TrimSpace(missingDocument)
	if missingDocument == "" {
		return nil, domain.ErrEmptyInput
	}

	updated, err := s.store.UpdateApplication(ctx, applicationID, func(app *domain.Application) error {
		app.AgentMissingDocument = &missingDocument
		if agentID != "" {
			app.AgentReviewedBy = &agentID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Your admission file is incomplete: %s. Please provide the missing document.", missingDocument)
	if _, err := s.notifSvc.Notify(ctx, updated.ID, domain.NotifWarning, "Incomplete file", message); err != nil {
		log.Printf("workflow: notify applicant %s: %v", updated.ID, err)
	}

	go func(toEmail, name, missing string) {
		if err := s.mailer.SendMissingDocumentEmail(context.Background(), toEmail, name, missing); err != nil {
			log.Printf("workflow: send missing-document email to %s: %v", toEmail, err)
		}
	}(updated.Email, updated.FullName(), missingDocument)

	return updated, nil
}

// Validate marks an application awaiting decision as validated. The status
// change is committed first; the inbox entry, success notification, decision
// email and class export are best-effort afterwards.
func (s *service) Validate(ctx context.Context, applicationID, directorID string) (*domain.Application, error) {
	updated, err := s.store.UpdateApplication(ctx, applicationID, func(app *domain.Application) error {
		if app.Status != domain.StatusToValidate {
			return ErrNotAwaitingDecision
		}
		now := time.Now().UTC()
		app.Status = domain.StatusValidated
		app.ValidatedBy = &directorID
		app.ValidatedAt = &now
		app.RejectionReason = nil
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.afterDecision(ctx, updated, "")

	go func(classID string) {
		if _, err := s.exporter.GenerateForClass(context.Background(), classID); err != nil {
			log.Printf("workflow: export class %s: %v", classID, err)
		}
	}(updated.ClassID)

	return updated, nil
}

// Reject marks an application awaiting decision as rejected. A blank reason
// is refused before any mutation.
func (s *service) Reject(ctx context.Context, applicationID, directorID, reason string) (*domain.Application, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domain.ErrEmptyInput
	}

	updated, err := s.store.UpdateApplication(ctx, applicationID, func(app *domain.Application) error {
		if app.Status != domain.StatusToValidate {
			return ErrNotAwaitingDecision
		}
		now := time.Now().UTC()
		app.Status = domain.StatusRejected
		app.ValidatedBy = &directorID
		app.ValidatedAt = &now
		app.RejectionReason = &reason
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.afterDecision(ctx, updated, reason)

	return updated, nil
}

func (s *service) ClearInbox(ctx context.Context, applicationID string) error {
	return s.inboxSvc.Clear(ctx, applicationID)
}

// afterDecision runs the side effects common to both decisions. Failures
// are logged and swallowed: the committed transition survives them.
func (s *service) afterDecision(ctx context.Context, app *domain.Application, reason string) {
	if err := s.inboxSvc.Clear(ctx, app.ID); err != nil {
		log.Printf("workflow: clear inbox for %s: %v", app.ID, err)
	}

	var (
		notifType domain.NotificationType
		title     string
		message   string
	)
	if app.Status == domain.StatusValidated {
		notifType = domain.NotifSuccess
		title = "Application validated"
		message = fmt.Sprintf("Congratulations %s, your admission has been validated.", app.FullName())
	} else {
		notifType = domain.NotifError
		title = "Application rejected"
		message = fmt.Sprintf("Your admission has been rejected: %s", reason)
	}

	if _, err := s.notifSvc.Notify(ctx, app.ID, notifType, title, message); err != nil {
		log.Printf("workflow: notify applicant %s: %v", app.ID, err)
	}

	go func(toEmail, name string, status domain.ApplicationStatus) {
		if err := s.mailer.SendDecisionEmail(context.Background(), toEmail, name, status, reason); err != nil {
			log.Printf("workflow: send decision email to %s: %v", toEmail, err)
		}
	}(app.Email, app.FullName(), app.Status)
}
