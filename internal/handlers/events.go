package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifeboard-dev/lifeboard/internal/models"
	"github.com/lifeboard-dev/lifeboard/internal/store"
)

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time"`
	Description string `json:"description"`
}

func (h *Handler) ListEvents(ctx *gin.Context) {
	events, err := h.store.ListEvents(ctx.Request.Context())

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve events"})
		return
	}

	if events == nil {
		events = []models.Event{}
	}

	ctx.JSON(http.StatusOK, events)
}

func (h *Handler) CreateEvent(ctx *gin.Context) {
	var req CreateEventRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event := models.Event{
		Title:       req.Title,
		Date:        date,
		Time:        req.Time,
		Description: req.Description,
	}

	if err := h.store.CreateEvent(ctx.Request.Context(), &event); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	h.hub.NotifyChanged("events")
	ctx.JSON(http.StatusCreated, event)
}

func (h *Handler) DeleteEvent(ctx *gin.Context) {
	if err := h.store.DeleteEvent(ctx.Request.Context(), ctx.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		}
		return
	}

	h.hub.NotifyChanged("events")
	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
