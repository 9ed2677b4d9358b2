package notification_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admissions-portal/internal/domain"
	"admissions-portal/internal/service/notification"
	"admissions-portal/internal/store"
)

func newService(t *testing.T) (notification.Service, *store.Store) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	st := store.New(store.NewRedisKV(client))
	return notification.NewService(st), st
}

func TestNotify_PrependsNewestFirst(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	first, err := svc.Notify(ctx, "app-0001", domain.NotifInfo, "First", "first message")
	require.NoError(t, err)
	second, err := svc.Notify(ctx, "app-0001", domain.NotifSuccess, "Second", "second message")
	require.NoError(t, err)

	page, err := svc.List(ctx, "app-0001", false, domain.PaginationParams{})
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	assert.Equal(t, second.ID, page.Data[0].ID)
	assert.Equal(t, first.ID, page.Data[1].ID)
	assert.Equal(t, int64(2), page.TotalItems)
}

func TestNotify_ConcurrentAppendsAllPersist(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()
	const writers = 50

	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(n int) {
			defer wg.Done()
			_, err := svc.Notify(ctx, "app-0001", domain.NotifInfo, "Title", fmt.Sprintf("message %d", n))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	notifs, err := st.GetNotifications(ctx)
	require.NoError(t, err)
	assert.Len(t, notifs, writers, "no append may be lost to a concurrent writer")
}

func TestList_FiltersByUser(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Notify(ctx, "app-0001", domain.NotifInfo, "Mine", "for app-0001")
	require.NoError(t, err)
	_, err = svc.Notify(ctx, "app-0002", domain.NotifInfo, "Theirs", "for app-0002")
	require.NoError(t, err)

	page, err := svc.List(ctx, "app-0001", false, domain.PaginationParams{})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "app-0001", page.Data[0].UserID)
}

func TestList_UnreadOnly(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	read, err := svc.Notify(ctx, "app-0001", domain.NotifInfo, "Old", "already seen")
	require.NoError(t, err)
	unread, err := svc.Notify(ctx, "app-0001", domain.NotifWarning, "New", "not yet seen")
	require.NoError(t, err)
	require.NoError(t, svc.MarkAsRead(ctx, read.ID))

	page, err := svc.List(ctx, "app-0001", true, domain.PaginationParams{})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, unread.ID, page.Data[0].ID)
}

func TestList_Pagination(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Notify(ctx, "app-0001", domain.NotifInfo, "Title", fmt.Sprintf("message %d", i))
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, "app-0001", false, domain.PaginationParams{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, int64(5), page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasNext)
	assert.True(t, page.HasPrev)
}

func TestMarkAsRead(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	notif, err := svc.Notify(ctx, "app-0001", domain.NotifInfo, "Title", "message")
	require.NoError(t, err)

	require.NoError(t, svc.MarkAsRead(ctx, notif.ID))

	notifs, err := st.GetNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, notifs, 1)
	assert.True(t, notifs[0].Read)

	// Marking an already-read entry is a no-op.
	require.NoError(t, svc.MarkAsRead(ctx, notif.ID))
}

func TestMarkAsRead_NotFound(t *testing.T) {
	svc, _ := newService(t)

	err := svc.MarkAsRead(context.Background(), "nonexistent-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMarkAllAsRead(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Notify(ctx, "app-0001", domain.NotifInfo, "A", "a")
	require.NoError(t, err)
	_, err = svc.Notify(ctx, "app-0001", domain.NotifInfo, "B", "b")
	require.NoError(t, err)
	_, err = svc.Notify(ctx, "app-0002", domain.NotifInfo, "C", "c")
	require.NoError(t, err)

	require.NoError(t, svc.MarkAllAsRead(ctx, "app-0001"))

	mine, err := svc.CountUnread(ctx, "app-0001")
	require.NoError(t, err)
	assert.Equal(t, int64(0), mine)

	theirs, err := svc.CountUnread(ctx, "app-0002")
	require.NoError(t, err)
	assert.Equal(t, int64(1), theirs)

	// Nothing left unread: a second pass writes nothing and still succeeds.
	require.NoError(t, svc.MarkAllAsRead(ctx, "app-0001"))
}

func TestCountUnread_EmptyLog(t *testing.T) {
	svc, _ := newService(t)

	count, err := svc.CountUnread(context.Background(), "app-0001")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
