package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"nerd/internal/events"
)

const heartbeatInterval = 25 * time.Second

// EventsHandler streams change notifications as server-sent events.
type EventsHandler struct {
	feed      events.Subscriber
	heartbeat time.Duration
}

// NewEventsHandler creates a new change feed handler.
func NewEventsHandler(feed events.Subscriber) *EventsHandler {
	return &EventsHandler{feed: feed, heartbeat: heartbeatInterval}
}

// Stream godoc
// @Summary Stream collection changes
// @Description Each event names a collection and record; clients refetch on receipt.
// @Tags events
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {object} events.Change
// @Router /events [get]
func (h *EventsHandler) Stream(c echo.Context) error {
	ctx := c.Request().Context()
	changes, stop := h.feed.Subscribe(ctx)
	defer stop()

	res := c.Response()
	// the server write timeout would otherwise cut long-lived streams
	_ = http.NewResponseController(res).SetWriteDeadline(time.Time{})
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := fmt.Fprint(res, ": ping\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case change, ok := <-changes:
			if !ok {
				return nil
			}
			payload, err := json.Marshal(change)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", change.Action, payload); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
