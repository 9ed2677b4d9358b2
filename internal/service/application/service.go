package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"admissions-portal/internal/domain"
	"admissions-portal/internal/service/completeness"
	"admissions-portal/internal/store"
)

// Store is the slice of the record store the intake service needs.
type Store interface {
	GetApplications(ctx context.Context) ([]domain.Application, error)
	AppendApplication(ctx context.Context, build func(apps []domain.Application) domain.Application) (*domain.Application, error)
	UpdateApplication(ctx context.Context, id string, mutate func(app *domain.Application) error) (*domain.Application, error)
}

// Service covers intake and browsing: creating applications from the
// admission form, attaching documents, and the filtered listings the agent
// and director views are built on.
type Service interface {
	Create(ctx context.Context, input domain.CreateApplicationInput) (*domain.Application, error)
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	List(ctx context.Context, filter domain.ApplicationFilter, params domain.PaginationParams) (domain.PaginatedResponse[domain.Application], error)
	AddDocument(ctx context.Context, applicationID string, input domain.AddDocumentInput) (*domain.Application, error)
	CheckIssues(ctx context.Context, applicationID string) (domain.DocumentIssues, error)
}

type service struct {
	store Store
}

func NewService(st Store) Service {
	return &service{store: st}
}

func (s *service) Create(ctx context.Context, input domain.CreateApplicationInput) (*domain.Application, error) {
	// The matricule depends on the collection size, so the record is built
	// inside the store's atomic append.
	return s.store.AppendApplication(ctx, func(apps []domain.Application) domain.Application {
		now := time.Now().UTC()
		return domain.Application{
			ID:          store.NewID(),
			Matricule:   nextMatricule(apps, now),
			FirstName:   input.FirstName,
			LastName:    input.LastName,
			Gender:      input.Gender,
			DateOfBirth: input.DateOfBirth,
			Email:       input.Email,
			Phone:       input.Phone,
			Address:     input.Address,
			SchoolID:    input.SchoolID,
			ClassID:     input.ClassID,
			Status:      domain.StatusPending,
			Documents:   []domain.Document{},
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	})
}

// nextMatricule derives the human-readable registration code from the
// current collection size. Collisions after deletions are not a concern:
// applications are never hard-deleted in this system.
func nextMatricule(apps []domain.Application, now time.Time) string {
	return fmt.Sprintf("ADM-%d-%04d", now.Year(), len(apps)+1)
}

func (s *service) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	apps, err := s.store.GetApplications(ctx)
	if err != nil {
		return nil, err
	}

	for i := range apps {
		if apps[i].ID == id {
			return &apps[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *service) List(ctx context.Context, filter domain.ApplicationFilter, params domain.PaginationParams) (domain.PaginatedResponse[domain.Application], error) {
	params.Validate()

	apps, err := s.store.GetApplications(ctx)
	if err != nil {
		return domain.PaginatedResponse[domain.Application]{}, err
	}

	filtered := make([]domain.Application, 0, len(apps))
	for _, app := range apps {
		if filter.Status != nil && app.Status != *filter.Status {
			continue
		}
		if filter.SchoolID != "" && app.SchoolID != filter.SchoolID {
			continue
		}
		if filter.ClassID != "" && app.ClassID != filter.ClassID {
			continue
		}
		if filter.Search != "" && !matchesSearch(&app, filter.Search) {
			continue
		}
		filtered = append(filtered, app)
	}

	page, total := domain.Paginate(filtered, params)
	return domain.NewPaginatedResponse(page, params.Page, params.PageSize, total), nil
}

func matchesSearch(app *domain.Application, search string) bool {
	needle := strings.ToLower(search)
	for _, field := range []string{app.FirstName, app.LastName, app.Matricule, app.Email} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func (s *service) AddDocument(ctx context.Context, applicationID string, input domain.AddDocumentInput) (*domain.Application, error) {
	return s.store.UpdateApplication(ctx, applicationID, func(app *domain.Application) error {
		app.Documents = append(app.Documents, domain.Document{
			ID:         store.NewID(),
			Name:       input.Name,
			Type:       input.Type,
			URL:        input.URL,
			UploadedAt: time.Now().UTC(),
		})
		return nil
	})
}

// CheckIssues exposes the completeness report for display without going
// through the gate.
func (s *service) CheckIssues(ctx context.Context, applicationID string) (domain.DocumentIssues, error) {
	app, err := s.GetByID(ctx, applicationID)
	if err != nil {
		return domain.DocumentIssues{}, err
	}
	return completeness.CheckIssues(app), nil
}
