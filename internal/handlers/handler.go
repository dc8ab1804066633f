package handlers

import (
	"fmt"
	"time"

	"github.com/lifeboard-dev/lifeboard/internal/store"
)

// Handler carries the injected store handle and the websocket refresh hub;
// there is no package-level state.
type Handler struct {
	store store.Store
	hub   *Hub
}

func New(s store.Store, hub *Hub) *Handler {
	return &Handler{store: s, hub: hub}
}

// parseDate accepts full RFC3339 timestamps or bare YYYY-MM-DD dates, the
// two shapes the SPA sends.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected ISO-8601", value)
	}
	return t.UTC(), nil
}
