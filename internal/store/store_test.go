package store_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admissions-portal/internal/domain"
	"admissions-portal/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return store.New(store.NewRedisKV(client))
}

func TestGetApplications_SeedsOnFirstRead(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	apps, err := st.GetApplications(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, apps)
	assert.Equal(t, len(store.SeedApplications()), len(apps))

	for _, app := range apps {
		assert.Equal(t, domain.StatusPending, app.Status)
	}
}

func TestGetApplications_SeedingIsIdempotent(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	apps, err := st.GetApplications(ctx)
	require.NoError(t, err)

	// Mutate and persist; a subsequent read must return the persisted copy,
	// not a fresh seed.
	apps[0].FirstName = "Changed"
	require.NoError(t, st.SaveApplications(ctx, apps))

	again, err := st.GetApplications(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Changed", again[0].FirstName)
	assert.Equal(t, len(apps), len(again))
}

func TestApplications_DateRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	created := time.Date(2025, time.July, 3, 14, 30, 45, 123000000, time.UTC)
	apps := []domain.Application{
		{
			ID:          "app-rt",
			Matricule:   "ADM-2025-0042",
			FirstName:   "Test",
			LastName:    "Person",
			Gender:      domain.GenderFemale,
			DateOfBirth: time.Date(2008, time.February, 9, 0, 0, 0, 0, time.UTC),
			Status:      domain.StatusPending,
			Documents: []domain.Document{
				{ID: "doc-rt", Name: "Diploma.pdf", Type: "pdf", URL: "https://x/doc", UploadedAt: created},
			},
			CreatedAt: created,
			UpdatedAt: created,
		},
	}
	require.NoError(t, st.SaveApplications(ctx, apps))

	got, err := st.GetApplications(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.True(t, got[0].CreatedAt.Equal(created), "created_at should survive the round trip")
	assert.True(t, got[0].Documents[0].UploadedAt.Equal(created))
	assert.True(t, got[0].DateOfBirth.Equal(apps[0].DateOfBirth))
	assert.Equal(t, apps[0].Matricule, got[0].Matricule)
}

func TestUpdateApplication_MutatesAndRefreshesUpdatedAt(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	apps, err := st.GetApplications(ctx)
	require.NoError(t, err)
	target := apps[0]

	updated, err := st.UpdateApplication(ctx, target.ID, func(app *domain.Application) error {
		app.Status = domain.StatusToValidate
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, domain.StatusToValidate, updated.Status)
	assert.False(t, updated.UpdatedAt.Before(target.UpdatedAt), "updated_at must never go backwards")
	assert.Equal(t, target.FirstName, updated.FirstName, "untouched fields keep their values")

	persisted, err := st.GetApplications(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusToValidate, persisted[0].Status)
}

func TestUpdateApplication_ClearsRejectionReason(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	apps, err := st.GetApplications(ctx)
	require.NoError(t, err)

	reason := "Incomplete file"
	_, err = st.UpdateApplication(ctx, apps[0].ID, func(app *domain.Application) error {
		app.RejectionReason = &reason
		return nil
	})
	require.NoError(t, err)

	updated, err := st.UpdateApplication(ctx, apps[0].ID, func(app *domain.Application) error {
		app.RejectionReason = nil
		return nil
	})
	require.NoError(t, err)
	assert.Nil(t, updated.RejectionReason)
}

func TestUpdateApplication_NotFound(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	before, err := st.GetApplications(ctx)
	require.NoError(t, err)

	updated, err := st.UpdateApplication(ctx, "nonexistent-id", func(app *domain.Application) error {
		app.Status = domain.StatusValidated
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, updated)

	after, err := st.GetApplications(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after, "a failed update must not touch the collection")
}

func TestUpdateApplication_MutateErrorWritesNothing(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	before, err := st.GetApplications(ctx)
	require.NoError(t, err)

	refused := errors.New("refused")
	updated, err := st.UpdateApplication(ctx, before[0].ID, func(app *domain.Application) error {
		app.Status = domain.StatusValidated
		return refused
	})
	assert.ErrorIs(t, err, refused)
	assert.Nil(t, updated)

	after, err := st.GetApplications(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestAppendApplication_BuildsFromCurrentCollection(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	before, err := st.GetApplications(ctx)
	require.NoError(t, err)

	app, err := st.AppendApplication(ctx, func(apps []domain.Application) domain.Application {
		return domain.Application{
			ID:        store.NewID(),
			Matricule: fmt.Sprintf("ADM-2025-%04d", len(apps)+1),
			Status:    domain.StatusPending,
		}
	})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("ADM-2025-%04d", len(before)+1), app.Matricule)

	after, err := st.GetApplications(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)
}

func TestInboxAndNotifications_EmptyWithoutSeeding(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	items, err := st.GetDirectorInbox(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	notifs, err := st.GetNotifications(ctx)
	require.NoError(t, err)
	assert.Empty(t, notifs)
}

func TestDirectorInbox_RoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	directorID := "dir-1"
	items := []domain.DirectorInboxItem{
		{ID: store.NewID(), ApplicationID: "app-0001", SchoolID: "school-1", DirectorID: &directorID, CreatedAt: time.Now().UTC()},
	}
	require.NoError(t, st.SaveDirectorInbox(ctx, items))

	got, err := st.GetDirectorInbox(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "app-0001", got[0].ApplicationID)
	require.NotNil(t, got[0].DirectorID)
	assert.Equal(t, directorID, *got[0].DirectorID)
}

func TestNotifications_RoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	notifs := []domain.Notification{
		{ID: store.NewID(), UserID: "app-0001", Type: domain.NotifInfo, Title: "T", Message: "m", CreatedAt: time.Now().UTC()},
	}
	require.NoError(t, st.SaveNotifications(ctx, notifs))

	got, err := st.GetNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "app-0001", got[0].UserID)
}

func TestNewID_Unique(t *testing.T) {
	a := store.NewID()
	b := store.NewID()

	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}
