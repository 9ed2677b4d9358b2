package inbox

import (
	"context"
	"time"

	"admissions-portal/internal/domain"
	"admissions-portal/internal/store"
)

// Store is the slice of the record store the inbox needs. Applications are
// read only to enrich director-facing entries.
type Store interface {
	GetDirectorInbox(ctx context.Context) ([]domain.DirectorInboxItem, error)
	UpdateDirectorInbox(ctx context.Context, mutate func(items []domain.DirectorInboxItem) ([]domain.DirectorInboxItem, bool, error)) error
	GetApplications(ctx context.Context) ([]domain.Application, error)
}

// Service is the routing log of applications awaiting a director's
// decision. Entries are prepended on creation and removed wholesale when
// the referenced application is resolved.
type Service interface {
	Add(ctx context.Context, applicationID, schoolID string, directorID, agentID *string) (*domain.DirectorInboxItem, error)
	ListForDirector(ctx context.Context, directorID string) ([]domain.InboxEntry, error)
	MarkAsRead(ctx context.Context, id string) error
	Clear(ctx context.Context, applicationID string) error
}

type service struct {
	store Store
}

func NewService(st Store) Service {
	return &service{store: st}
}

func (s *service) Add(ctx context.Context, applicationID, schoolID string, directorID, agentID *string) (*domain.DirectorInboxItem, error) {
	item := domain.DirectorInboxItem{
		ID:            store.NewID(),
		ApplicationID: applicationID,
		SchoolID:      schoolID,
		DirectorID:    directorID,
		AgentID:       agentID,
		CreatedAt:     time.Now().UTC(),
	}

	err := s.store.UpdateDirectorInbox(ctx, func(items []domain.DirectorInboxItem) ([]domain.DirectorInboxItem, bool, error) {
		return append([]domain.DirectorInboxItem{item}, items...), true, nil
	})
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (s *service) ListForDirector(ctx context.Context, directorID string) ([]domain.InboxEntry, error) {
	items, err := s.store.GetDirectorInbox(ctx)
	if err != nil {
		return nil, err
	}

	apps, err := s.store.GetApplications(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Application, len(apps))
	for i := range apps {
		byID[apps[i].ID] = &apps[i]
	}

	entries := make([]domain.InboxEntry, 0, len(items))
	for _, item := range items {
		if item.DirectorID == nil || *item.DirectorID != directorID {
			continue
		}

		entry := domain.InboxEntry{DirectorInboxItem: item}
		if app, ok := byID[item.ApplicationID]; ok {
			entry.ApplicantName = app.FullName()
			entry.Matricule = app.Matricule
			entry.Status = app.Status
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (s *service) MarkAsRead(ctx context.Context, id string) error {
	return s.store.UpdateDirectorInbox(ctx, func(items []domain.DirectorInboxItem) ([]domain.DirectorInboxItem, bool, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if items[i].Read {
				return items, false, nil
			}
			items[i].Read = true
			return items, true, nil
		}
		return items, false, domain.ErrNotFound
	})
}

// Clear removes every inbox entry referencing the application. It is
// idempotent: clearing an application with no entries writes nothing.
func (s *service) Clear(ctx context.Context, applicationID string) error {
	return s.store.UpdateDirectorInbox(ctx, func(items []domain.DirectorInboxItem) ([]domain.DirectorInboxItem, bool, error) {
		kept := items[:0]
		for _, item := range items {
			if item.ApplicationID != applicationID {
				kept = append(kept, item)
			}
		}
		return kept, len(kept) != len(items), nil
	})
}
