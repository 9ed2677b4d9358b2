package notification

import (
	"context"
	"time"

	"admissions-portal/internal/domain"
	"admissions-portal/internal/store"
)

// Store is the slice of the record store the notification sink needs.
type Store interface {
	GetNotifications(ctx context.Context) ([]domain.Notification, error)
	UpdateNotifications(ctx context.Context, mutate func(notifs []domain.Notification) ([]domain.Notification, bool, error)) error
}

// Service is the append-only per-user notification log. Entries are
// prepended so readers see newest first; they are only ever mutated by
// marking them read, never deleted.
type Service interface {
	Notify(ctx context.Context, userID string, notifType domain.NotificationType, title, message string) (*domain.Notification, error)
	List(ctx context.Context, userID string, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error)
	MarkAsRead(ctx context.Context, id string) error
	MarkAllAsRead(ctx context.Context, userID string) error
	CountUnread(ctx context.Context, userID string) (int64, error)
}

type service struct {
	store Store
}

func NewService(st Store) Service {
	return &service{store: st}
}

func (s *service) Notify(ctx context.Context, userID string, notifType domain.NotificationType, title, message string) (*domain.Notification, error) {
	notif := domain.Notification{
		ID:        store.NewID(),
		UserID:    userID,
		Type:      notifType,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	err := s.store.UpdateNotifications(ctx, func(notifs []domain.Notification) ([]domain.Notification, bool, error) {
		return append([]domain.Notification{notif}, notifs...), true, nil
	})
	if err != nil {
		return nil, err
	}

	return &notif, nil
}

func (s *service) List(ctx context.Context, userID string, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	params.Validate()

	notifs, err := s.store.GetNotifications(ctx)
	if err != nil {
		return domain.PaginatedResponse[domain.Notification]{}, err
	}

	filtered := make([]domain.Notification, 0, len(notifs))
	for _, n := range notifs {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		filtered = append(filtered, n)
	}

	page, total := domain.Paginate(filtered, params)
	return domain.NewPaginatedResponse(page, params.Page, params.PageSize, total), nil
}

func (s *service) MarkAsRead(ctx context.Context, id string) error {
	return s.store.UpdateNotifications(ctx, func(notifs []domain.Notification) ([]domain.Notification, bool, error) {
		for i := range notifs {
			if notifs[i].ID != id {
				continue
			}
			if notifs[i].Read {
				return notifs, false, nil
			}
			notifs[i].Read = true
			return notifs, true, nil
		}
		return notifs, false, domain.ErrNotFound
	})
}

func (s *service) MarkAllAsRead(ctx context.Context, userID string) error {
	return s.store.UpdateNotifications(ctx, func(notifs []domain.Notification) ([]domain.Notification, bool, error) {
		changed := false
		for i := range notifs {
			if notifs[i].UserID == userID && !notifs[i].Read {
				notifs[i].Read = true
				changed = true
			}
		}
		return notifs, changed, nil
	})
}

func (s *service) CountUnread(ctx context.Context, userID string) (int64, error) {
	notifs, err := s.store.GetNotifications(ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	for _, n := range notifs {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}
