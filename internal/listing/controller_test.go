package listing

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdesk/fleetdesk/internal/domain"
)

type fetchReply struct {
	page domain.Page[string]
	err  error
}

type fetchCall struct {
	q     domain.ListQuery
	reply chan fetchReply
}

// blockingFetcher parks every fetch until the test answers it, which lets
// tests control completion order independently of issue order.
func blockingFetcher() (Fetcher[string], chan fetchCall) {
	calls := make(chan fetchCall, 16)
	fetch := func(ctx context.Context, q domain.ListQuery) (domain.Page[string], error) {
		c := fetchCall{q: q, reply: make(chan fetchReply, 1)}
		calls <- c
		select {
		case r := <-c.reply:
			return r.page, r.err
		case <-ctx.Done():
			return domain.Page[string]{}, ctx.Err()
		}
	}
	return fetch, calls
}

func pageOf(prefix string, n, current, last, total int) domain.Page[string] {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("%s-%d", prefix, (current-1)*n+i+1)
	}
	return domain.Page[string]{
		Items:      items,
		Pagination: domain.Pagination{CurrentPage: current, LastPage: last, Total: total},
	}
}

func nextCall(t *testing.T, calls chan fetchCall) fetchCall {
	t.Helper()
	select {
	case c := <-calls:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("expected a fetch to be issued")
		return fetchCall{}
	}
}

func noCall(t *testing.T, calls chan fetchCall, within time.Duration) {
	t.Helper()
	select {
	case c := <-calls:
		t.Fatalf("unexpected fetch issued: %+v", c.q)
	case <-time.After(within):
	}
}

func TestLastIssuedRequestWins(t *testing.T) {
	fetch, calls := blockingFetcher()
	ctrl := NewController(fetch)

	// Two filter changes race; the older request completes last.
	ctrl.SetFilter("status", "active")
	first := nextCall(t, calls)
	ctrl.SetFilter("status", "maintenance")
	second := nextCall(t, calls)

	assert.Equal(t, "active", first.q.Filters["status"])
	assert.Equal(t, "maintenance", second.q.Filters["status"])

	second.reply <- fetchReply{page: pageOf("new", 3, 1, 1, 3)}
	require.Eventually(t, func() bool {
		return !ctrl.Snapshot().IsLoading
	}, 2*time.Second, 5*time.Millisecond)

	first.reply <- fetchReply{page: pageOf("stale", 3, 1, 1, 3)}
	time.Sleep(50 * time.Millisecond)

	snap := ctrl.Snapshot()
	assert.Equal(t, []string{"new-1", "new-2", "new-3"}, snap.Items)
	assert.Equal(t, 1, snap.Pagination.CurrentPage)
}

func TestSearchDebounceCollapsesKeystrokes(t *testing.T) {
	fetch, calls := blockingFetcher()
	ctrl := NewController(fetch, WithDebounce[string](40*time.Millisecond))

	ctrl.SetSearch("AB")
	time.Sleep(10 * time.Millisecond)
	ctrl.SetSearch("ABC")

	c := nextCall(t, calls)
	assert.Equal(t, "ABC", c.q.Search)
	assert.Equal(t, 1, c.q.Page)
	c.reply <- fetchReply{page: pageOf("s", 1, 1, 1, 1)}

	// The first keystroke's timer was cancelled; no second request.
	noCall(t, calls, 120*time.Millisecond)
}

func TestFilterChangeCancelsPendingSearchTimer(t *testing.T) {
	fetch, calls := blockingFetcher()
	ctrl := NewController(fetch, WithDebounce[string](40*time.Millisecond))

	ctrl.SetSearch("wint")
	ctrl.SetFilter("status", "active")

	c := nextCall(t, calls)
	assert.Equal(t, "wint", c.q.Search)
	assert.Equal(t, "active", c.q.Filters["status"])
	c.reply <- fetchReply{page: pageOf("f", 2, 1, 1, 2)}

	// The debounced search fetch would duplicate the filter fetch.
	noCall(t, calls, 120*time.Millisecond)
}

func TestRefreshCancelsPendingSearchTimer(t *testing.T) {
	fetch, calls := blockingFetcher()
	ctrl := NewController(fetch, WithDebounce[string](40*time.Millisecond))

	ctrl.SetSearch("wint")
	ctrl.Refresh()

	c := nextCall(t, calls)
	assert.Equal(t, "wint", c.q.Search)
	c.reply <- fetchReply{page: pageOf("r", 2, 1, 1, 2)}

	noCall(t, calls, 120*time.Millisecond)
}

func TestFilterChangeResetsToPageOneAndReplaces(t *testing.T) {
	fetch, calls := blockingFetcher()
	ctrl := NewController(fetch)

	ctrl.Load()
	nextCall(t, calls).reply <- fetchReply{page: pageOf("a", 20, 1, 3, 57)}
	require.Eventually(t, func() bool { return len(ctrl.Snapshot().Items) == 20 }, 2*time.Second, 5*time.Millisecond)

	ctrl.LoadMore()
	more := nextCall(t, calls)
	assert.Equal(t, 2, more.q.Page)
	more.reply <- fetchReply{page: pageOf("a", 20, 2, 3, 57)}
	require.Eventually(t, func() bool { return len(ctrl.Snapshot().Items) == 40 }, 2*time.Second, 5*time.Millisecond)

	ctrl.SetFilter("status", "active")
	filtered := nextCall(t, calls)
	assert.Equal(t, 1, filtered.q.Page, "filter change must reset the page cursor")
	filtered.reply <- fetchReply{page: pageOf("b", 5, 1, 1, 5)}

	require.Eventually(t, func() bool { return len(ctrl.Snapshot().Items) == 5 }, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, "b-1", ctrl.Snapshot().Items[0], "filter change must replace, not append")
}

func TestLoadMoreAppendsPreservingOrder(t *testing.T) {
	fetch, calls := blockingFetcher()
	ctrl := NewController(fetch)

	ctrl.Load()
	nextCall(t, calls).reply <- fetchReply{page: pageOf("v", 20, 1, 3, 57)}
	require.Eventually(t, func() bool { return len(ctrl.Snapshot().Items) == 20 }, 2*time.Second, 5*time.Millisecond)

	ctrl.LoadMore()
	nextCall(t, calls).reply <- fetchReply{page: pageOf("v", 20, 2, 3, 57)}
	require.Eventually(t, func() bool { return len(ctrl.Snapshot().Items) == 40 }, 2*time.Second, 5*time.Millisecond)

	snap := ctrl.Snapshot()
	assert.Equal(t, "v-1", snap.Items[0])
	assert.Equal(t, "v-20", snap.Items[19])
	assert.Equal(t, "v-21", snap.Items[20])
	assert.Equal(t, 2, snap.Pagination.CurrentPage)
}

func TestLoadMoreGuards(t *testing.T) {
	fetch, calls := blockingFetcher()
	ctrl := NewController(fetch)

	ctrl.Load()
	nextCall(t, calls).reply <- fetchReply{page: pageOf("v", 20, 1, 2, 40)}
	require.Eventually(t, func() bool { return len(ctrl.Snapshot().Items) == 20 }, 2*time.Second, 5*time.Millisecond)

	// Two rapid calls while the first is pending issue exactly one request.
	ctrl.LoadMore()
	ctrl.LoadMore()
	more := nextCall(t, calls)
	assert.Equal(t, 2, more.q.Page)
	noCall(t, calls, 80*time.Millisecond)
	more.reply <- fetchReply{page: pageOf("v", 20, 2, 2, 40)}
	require.Eventually(t, func() bool { return len(ctrl.Snapshot().Items) == 40 }, 2*time.Second, 5*time.Millisecond)

	// Already on the last page: no request at all.
	ctrl.LoadMore()
	noCall(t, calls, 80*time.Millisecond)
}

func TestCloseDiscardsLateResults(t *testing.T) {
	fetch, calls := blockingFetcher()
	ctrl := NewController(fetch, WithDebounce[string](20*time.Millisecond))

	ctrl.Load()
	inflight := nextCall(t, calls)
	ctrl.Close()
	inflight.reply <- fetchReply{page: pageOf("v", 20, 1, 1, 20)}
	time.Sleep(50 * time.Millisecond)

	snap := ctrl.Snapshot()
	assert.Empty(t, snap.Items)
	assert.Empty(t, snap.Err)

	// A debounce timer pending at unmount must not fire a fetch either.
	ctrl.SetSearch("ghost")
	noCall(t, calls, 100*time.Millisecond)
}

func TestErrorPreservesItemsAndRetryReissues(t *testing.T) {
	fetch, calls := blockingFetcher()
	ctrl := NewController(fetch)

	ctrl.Load()
	nextCall(t, calls).reply <- fetchReply{page: pageOf("v", 20, 1, 3, 57)}
	require.Eventually(t, func() bool { return len(ctrl.Snapshot().Items) == 20 }, 2*time.Second, 5*time.Millisecond)

	ctrl.Refresh()
	nextCall(t, calls).reply <- fetchReply{err: domain.ErrServerOffline}
	require.Eventually(t, func() bool { return ctrl.Snapshot().Err != "" }, 2*time.Second, 5*time.Millisecond)

	snap := ctrl.Snapshot()
	assert.Len(t, snap.Items, 20, "failed refresh must not clear the visible list")
	assert.Equal(t, "Server is unreachable. Check your connection.", snap.Err)
	assert.False(t, snap.Refreshing)

	ctrl.Retry()
	retry := nextCall(t, calls)
	assert.Equal(t, 1, retry.q.Page)
	retry.reply <- fetchReply{page: pageOf("v", 20, 1, 3, 57)}
	require.Eventually(t, func() bool { return ctrl.Snapshot().Err == "" }, 2*time.Second, 5*time.Millisecond)
}

func TestRefreshUsesSeparateIndicator(t *testing.T) {
	fetch, calls := blockingFetcher()
	ctrl := NewController(fetch)

	// Before any completed fetch, Refresh behaves like the initial load.
	ctrl.Refresh()
	c := nextCall(t, calls)
	assert.True(t, ctrl.Snapshot().IsLoading)
	assert.False(t, ctrl.Snapshot().Refreshing)
	c.reply <- fetchReply{page: pageOf("v", 20, 1, 1, 20)}
	require.Eventually(t, func() bool { return !ctrl.Snapshot().IsLoading }, 2*time.Second, 5*time.Millisecond)

	ctrl.Refresh()
	c = nextCall(t, calls)
	snap := ctrl.Snapshot()
	assert.True(t, snap.Refreshing)
	assert.False(t, snap.IsLoading, "refresh must not show the initial loading state")
	c.reply <- fetchReply{page: pageOf("v", 20, 1, 1, 20)}
	require.Eventually(t, func() bool { return !ctrl.Snapshot().Refreshing }, 2*time.Second, 5*time.Millisecond)
}

func TestAllValueClearsFilterKey(t *testing.T) {
	fetch, calls := blockingFetcher()
	ctrl := NewController(fetch)

	ctrl.SetFilter("status", "active")
	c := nextCall(t, calls)
	assert.Equal(t, "active", c.q.Filters["status"])
	c.reply <- fetchReply{page: pageOf("v", 1, 1, 1, 1)}

	ctrl.SetFilter("status", "all")
	c = nextCall(t, calls)
	_, present := c.q.Filters["status"]
	assert.False(t, present, `"all" must clear the filter key`)
	c.reply <- fetchReply{page: pageOf("v", 1, 1, 1, 1)}
}

func TestOnChangeFiresOnStateTransitions(t *testing.T) {
	fetch, calls := blockingFetcher()
	changes := make(chan struct{}, 32)
	ctrl := NewController(fetch, WithOnChange[string](func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	}))

	ctrl.Load()
	select {
	case <-changes:
	case <-time.After(time.Second):
		t.Fatal("expected a change notification when the fetch starts")
	}

	nextCall(t, calls).reply <- fetchReply{page: pageOf("v", 2, 1, 1, 2)}
	require.Eventually(t, func() bool { return len(ctrl.Snapshot().Items) == 2 }, 2*time.Second, 5*time.Millisecond)
}

func TestDisplayErrorWording(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{domain.ErrServerOffline, "Server is unreachable. Check your connection."},
		{domain.ErrAuthFailed, "Session expired. Sign in again."},
		{domain.ErrNotFound, "The requested records no longer exist."},
		{context.DeadlineExceeded, "The request timed out. Try again."},
		{errors.New("weird"), "Couldn't load data. Try again."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DisplayError(tt.err))
	}
}
