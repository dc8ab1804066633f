package handlers

import (
	"net/http"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/gin-gonic/gin"
)

// CalendarFeed serializes every date-bearing entity (events, important
// dates, bike events) as a VCALENDAR so the organizer can be subscribed
// from any calendar app.
func (h *Handler) CalendarFeed(ctx *gin.Context) {
	rc := ctx.Request.Context()

	events, err := h.store.ListEvents(rc)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve events"})
		return
	}

	dates, err := h.store.ListImportantDates(rc)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve important dates"})
		return
	}

	bikeEvents, err := h.store.ListBikeEvents(rc)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bike events"})
		return
	}

	cal := ics.NewCalendar()
	cal.SetProductId("-//lifeboard//EN")

	for _, event := range events {
		entry := cal.AddEvent("event-" + event.ID)
		entry.SetCreatedTime(event.CreatedAt)
		entry.SetModifiedAt(event.UpdatedAt)
		entry.SetSummary(event.Title)
		if event.Description != "" {
			entry.SetDescription(event.Description)
		}

		// Events carry an optional wall-clock time alongside the date.
		if start, ok := combineDateTime(event.Date, event.Time); ok {
			entry.SetStartAt(start)
			entry.SetEndAt(start.Add(time.Hour))
		} else {
			entry.SetAllDayStartAt(event.Date)
		}
	}

	for _, date := range dates {
		entry := cal.AddEvent("important-date-" + date.ID)
		entry.SetCreatedTime(date.CreatedAt)
		entry.SetModifiedAt(date.UpdatedAt)
		entry.SetSummary(date.Title)
		if date.Description != "" {
			entry.SetDescription(date.Description)
		}
		entry.SetAllDayStartAt(date.Date)
	}

	for _, event := range bikeEvents {
		entry := cal.AddEvent("bike-event-" + event.ID)
		entry.SetCreatedTime(event.CreatedAt)
		entry.SetModifiedAt(event.UpdatedAt)
		entry.SetSummary(event.Title)
		if event.Description != "" {
			entry.SetDescription(event.Description)
		}
		entry.SetAllDayStartAt(event.Date)
	}

	ctx.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(cal.Serialize()))
}

// combineDateTime merges a date with an optional "HH:MM" time of day.
func combineDateTime(date time.Time, clock string) (time.Time, bool) {
	if clock == "" {
		return time.Time{}, false
	}

	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, false
	}

	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, date.Location()), true
}
