package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"admissions-portal/internal/domain"
)

// Storage keys for the three persisted collections. Each collection is a
// single JSON array written wholesale: last writer wins, no merge.
const (
	keyApplications  = "admissions:applications"
	keyDirectorInbox = "admissions:director_inbox"
	keyNotifications = "admissions:notifications"
)

// KV is the narrow persistence interface underneath the record store. The
// store only ever reads and overwrites whole values, so a later move to
// per-record storage only touches this seam.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Store persists the application, director-inbox and notification
// collections. Every mutation runs as a read-modify-write of a full
// collection under that collection's mutex, so concurrent callers never
// lose each other's writes. There is no transaction spanning collections:
// cross-collection consistency is achieved by sequencing in the workflow
// layer.
type Store struct {
	kv KV

	appMu   sync.Mutex
	inboxMu sync.Mutex
	notifMu sync.Mutex
}

func New(kv KV) *Store {
	return &Store{kv: kv}
}

// GetApplications returns the persisted applications. On first read, when
// nothing has been persisted yet, it seeds the fixture set and persists it;
// subsequent calls return the persisted, possibly mutated, copy.
func (s *Store) GetApplications(ctx context.Context) ([]domain.Application, error) {
	s.appMu.Lock()
	defer s.appMu.Unlock()
	return s.getApplicationsLocked(ctx)
}

func (s *Store) getApplicationsLocked(ctx context.Context) ([]domain.Application, error) {
	raw, ok, err := s.kv.Get(ctx, keyApplications)
	if err != nil {
		return nil, fmt.Errorf("read applications: %w", err)
	}

	if !ok {
		apps := SeedApplications()
		if err := s.saveApplicationsLocked(ctx, apps); err != nil {
			return nil, err
		}
		return apps, nil
	}

	var apps []domain.Application
	if err := json.Unmarshal(raw, &apps); err != nil {
		return nil, fmt.Errorf("decode applications: %w", err)
	}
	return apps, nil
}

func (s *Store) SaveApplications(ctx context.Context, apps []domain.Application) error {
	s.appMu.Lock()
	defer s.appMu.Unlock()
	return s.saveApplicationsLocked(ctx, apps)
}

func (s *Store) saveApplicationsLocked(ctx context.Context, apps []domain.Application) error {
	raw, err := json.Marshal(apps)
	if err != nil {
		return fmt.Errorf("encode applications: %w", err)
	}
	return s.kv.Set(ctx, keyApplications, raw)
}

// UpdateApplication is the single mutation primitive for applications. It
// resolves the id, applies mutate to the record, refreshes updated_at and
// persists the whole collection, all under the applications lock, so the
// checks inside mutate and the write are one atomic step. When mutate
// returns an error nothing is written and the error is passed through.
// Returns domain.ErrNotFound when the id does not resolve.
func (s *Store) UpdateApplication(ctx context.Context, id string, mutate func(app *domain.Application) error) (*domain.Application, error) {
	s.appMu.Lock()
	defer s.appMu.Unlock()

	apps, err := s.getApplicationsLocked(ctx)
	if err != nil {
		return nil, err
	}

	for i := range apps {
		if apps[i].ID != id {
			continue
		}

		if err := mutate(&apps[i]); err != nil {
			return nil, err
		}
		apps[i].UpdatedAt = time.Now().UTC()

		if err := s.saveApplicationsLocked(ctx, apps); err != nil {
			return nil, err
		}

		updated := apps[i]
		return &updated, nil
	}

	return nil, domain.ErrNotFound
}

// AppendApplication builds a new record from the current collection and
// persists the append under the applications lock. build sees the
// collection so it can derive sequence-dependent fields such as the
// matricule without racing a concurrent append.
func (s *Store) AppendApplication(ctx context.Context, build func(apps []domain.Application) domain.Application) (*domain.Application, error) {
	s.appMu.Lock()
	defer s.appMu.Unlock()

	apps, err := s.getApplicationsLocked(ctx)
	if err != nil {
		return nil, err
	}

	app := build(apps)
	apps = append(apps, app)

	if err := s.saveApplicationsLocked(ctx, apps); err != nil {
		return nil, err
	}
	return &app, nil
}

// GetDirectorInbox returns the inbox collection, empty when nothing has
// been persisted. Inbox entries are never seeded.
func (s *Store) GetDirectorInbox(ctx context.Context) ([]domain.DirectorInboxItem, error) {
	s.inboxMu.Lock()
	defer s.inboxMu.Unlock()
	return s.getDirectorInboxLocked(ctx)
}

func (s *Store) getDirectorInboxLocked(ctx context.Context) ([]domain.DirectorInboxItem, error) {
	raw, ok, err := s.kv.Get(ctx, keyDirectorInbox)
	if err != nil {
		return nil, fmt.Errorf("read director inbox: %w", err)
	}
	if !ok {
		return []domain.DirectorInboxItem{}, nil
	}

	var items []domain.DirectorInboxItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode director inbox: %w", err)
	}
	return items, nil
}

func (s *Store) SaveDirectorInbox(ctx context.Context, items []domain.DirectorInboxItem) error {
	s.inboxMu.Lock()
	defer s.inboxMu.Unlock()
	return s.saveDirectorInboxLocked(ctx, items)
}

func (s *Store) saveDirectorInboxLocked(ctx context.Context, items []domain.DirectorInboxItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode director inbox: %w", err)
	}
	return s.kv.Set(ctx, keyDirectorInbox, raw)
}

// UpdateDirectorInbox applies mutate to the inbox collection and persists
// the result, all under the inbox lock. mutate returns the new collection
// and whether anything changed; when it reports no change nothing is
// written.
func (s *Store) UpdateDirectorInbox(ctx context.Context, mutate func(items []domain.DirectorInboxItem) ([]domain.DirectorInboxItem, bool, error)) error {
	s.inboxMu.Lock()
	defer s.inboxMu.Unlock()

	items, err := s.getDirectorInboxLocked(ctx)
	if err != nil {
		return err
	}

	items, changed, err := mutate(items)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return s.saveDirectorInboxLocked(ctx, items)
}

func (s *Store) GetNotifications(ctx context.Context) ([]domain.Notification, error) {
	s.notifMu.Lock()
	defer s.notifMu.Unlock()
	return s.getNotificationsLocked(ctx)
}

func (s *Store) getNotificationsLocked(ctx context.Context) ([]domain.Notification, error) {
	raw, ok, err := s.kv.Get(ctx, keyNotifications)
	if err != nil {
		return nil, fmt.Errorf("read notifications: %w", err)
	}
	if !ok {
		return []domain.Notification{}, nil
	}

	var notifs []domain.Notification
	if err := json.Unmarshal(raw, &notifs); err != nil {
		return nil, fmt.Errorf("decode notifications: %w", err)
	}
	return notifs, nil
}

func (s *Store) SaveNotifications(ctx context.Context, notifs []domain.Notification) error {
	s.notifMu.Lock()
	defer s.notifMu.Unlock()
	return s.saveNotificationsLocked(ctx, notifs)
}

func (s *Store) saveNotificationsLocked(ctx context.Context, notifs []domain.Notification) error {
	raw, err := json.Marshal(notifs)
	if err != nil {
		return fmt.Errorf("encode notifications: %w", err)
	}
	return s.kv.Set(ctx, keyNotifications, raw)
}

// UpdateNotifications applies mutate to the notification collection and
// persists the result, all under the notification lock. Same contract as
// UpdateDirectorInbox.
func (s *Store) UpdateNotifications(ctx context.Context, mutate func(notifs []domain.Notification) ([]domain.Notification, bool, error)) error {
	s.notifMu.Lock()
	defer s.notifMu.Unlock()

	notifs, err := s.getNotificationsLocked(ctx)
	if err != nil {
		return err
	}

	notifs, changed, err := mutate(notifs)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return s.saveNotificationsLocked(ctx, notifs)
}
