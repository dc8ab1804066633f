package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lifeboard-dev/lifeboard/internal/models"
	"github.com/lifeboard-dev/lifeboard/internal/store"
)

type CreateBikeIdeaRequest struct {
	Content string `json:"content" binding:"required"`
}

type UpdateBikeIdeaRequest struct {
	Content string `json:"content" binding:"required"`
}

type CreateBikeEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type UpdateBikeEventRequest struct {
	Title       *string `json:"title"`
	Date        *string `json:"date"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
}

// ---- Bike ideas

func (h *Handler) ListBikeIdeas(ctx *gin.Context) {
	ideas, err := h.store.ListBikeIdeas(ctx.Request.Context())

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bike ideas"})
		return
	}

	if ideas == nil {
		ideas = []models.BikeIdea{}
	}

	ctx.JSON(http.StatusOK, ideas)
}

func (h *Handler) CreateBikeIdea(ctx *gin.Context) {
	var req CreateBikeIdeaRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	idea := models.BikeIdea{Content: req.Content}

	if err := h.store.CreateBikeIdea(ctx.Request.Context(), &idea); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create bike idea"})
		return
	}

	h.hub.NotifyChanged("bike-ideas")
	ctx.JSON(http.StatusCreated, idea)
}

func (h *Handler) UpdateBikeIdea(ctx *gin.Context) {
	var req UpdateBikeIdeaRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	idea, err := h.store.UpdateBikeIdea(ctx.Request.Context(), ctx.Param("id"), store.BikeIdeaPatch{
		Content: &req.Content,
	})

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Bike idea not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bike idea"})
		}
		return
	}

	h.hub.NotifyChanged("bike-ideas")
	ctx.JSON(http.StatusOK, idea)
}

func (h *Handler) DeleteBikeIdea(ctx *gin.Context) {
	if err := h.store.DeleteBikeIdea(ctx.Request.Context(), ctx.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Bike idea not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete bike idea"})
		}
		return
	}

	h.hub.NotifyChanged("bike-ideas")
	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

// ---- Bike events

func (h *Handler) ListBikeEvents(ctx *gin.Context) {
	events, err := h.store.ListBikeEvents(ctx.Request.Context())

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bike events"})
		return
	}

	if events == nil {
		events = []models.BikeEvent{}
	}

	ctx.JSON(http.StatusOK, events)
}

func (h *Handler) CreateBikeEvent(ctx *gin.Context) {
	var req CreateBikeEventRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event := models.BikeEvent{
		Title:       req.Title,
		Date:        date,
		Description: req.Description,
		Type:        req.Type,
	}

	if err := h.store.CreateBikeEvent(ctx.Request.Context(), &event); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create bike event"})
		return
	}

	h.hub.NotifyChanged("bike-events")
	ctx.JSON(http.StatusCreated, event)
}

func (h *Handler) UpdateBikeEvent(ctx *gin.Context) {
	var req UpdateBikeEventRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Title cannot be empty"})
		return
	}

	var date *time.Time
	if req.Date != nil {
		parsed, err := parseDate(*req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		date = &parsed
	}

	event, err := h.store.UpdateBikeEvent(ctx.Request.Context(), ctx.Param("id"), store.BikeEventPatch{
		Title:       req.Title,
		Date:        date,
		Description: req.Description,
		Type:        req.Type,
	})

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Bike event not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bike event"})
		}
		return
	}

	h.hub.NotifyChanged("bike-events")
	ctx.JSON(http.StatusOK, event)
}

func (h *Handler) DeleteBikeEvent(ctx *gin.Context) {
	if err := h.store.DeleteBikeEvent(ctx.Request.Context(), ctx.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Bike event not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete bike event"})
		}
		return
	}

	h.hub.NotifyChanged("bike-events")
	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
