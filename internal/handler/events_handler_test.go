package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nerd/internal/events"
)

type fakeFeed struct {
	changes []events.Change
	stopped bool
}

func (f *fakeFeed) Subscribe(ctx context.Context) (<-chan events.Change, func()) {
	out := make(chan events.Change, len(f.changes))
	for _, c := range f.changes {
		out <- c
	}
	close(out)
	return out, func() { f.stopped = true }
}

type silentFeed struct{}

func (silentFeed) Subscribe(ctx context.Context) (<-chan events.Change, func()) {
	return make(chan events.Change), func() {}
}

func TestEventsStream_WritesChanges(t *testing.T) {
	feed := &fakeFeed{changes: []events.Change{
		{Collection: events.CollectionPending, ID: "c-1", Action: events.ActionCreated},
		{Collection: events.CollectionMaterials, ID: "m-1", Action: events.ActionDeleted},
	}}
	h := NewEventsHandler(feed)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Stream(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))
	body := rec.Body.String()
	assert.Contains(t, body, "event: created\ndata: {\"collection\":\"unverified_contributions\",\"id\":\"c-1\",\"action\":\"created\"}\n\n")
	assert.Contains(t, body, "event: deleted\ndata: {\"collection\":\"materials\",\"id\":\"m-1\",\"action\":\"deleted\"}\n\n")
	assert.True(t, feed.stopped)
}

func TestEventsStream_HeartbeatUntilClientLeaves(t *testing.T) {
	h := NewEventsHandler(silentFeed{})
	h.heartbeat = 10 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Stream(e.NewContext(req, rec)))

	assert.GreaterOrEqual(t, strings.Count(rec.Body.String(), ": ping\n\n"), 1)
}
