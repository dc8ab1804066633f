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

type CreateImportantDateRequest struct {
	Title       string `json:"title" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Description string `json:"description"`
	ClassID     string `json:"classId" binding:"required"`
}

type UpdateImportantDateRequest struct {
	Title       *string `json:"title"`
	Date        *string `json:"date"`
	Description *string `json:"description"`
}

func (h *Handler) ListImportantDates(ctx *gin.Context) {
	dates, err := h.store.ListImportantDates(ctx.Request.Context())

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve important dates"})
		return
	}

	if dates == nil {
		dates = []models.ImportantDate{}
	}

	ctx.JSON(http.StatusOK, dates)
}

func (h *Handler) CreateImportantDate(ctx *gin.Context) {
	var req CreateImportantDateRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	importantDate := models.ImportantDate{
		Title:       req.Title,
		Date:        date,
		Description: req.Description,
		ClassID:     req.ClassID,
	}

	if err := h.store.CreateImportantDate(ctx.Request.Context(), &importantDate); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create important date"})
		return
	}

	h.hub.NotifyChanged("important-dates")
	ctx.JSON(http.StatusCreated, importantDate)
}

func (h *Handler) UpdateImportantDate(ctx *gin.Context) {
	var req UpdateImportantDateRequest

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

	importantDate, err := h.store.UpdateImportantDate(ctx.Request.Context(), ctx.Param("id"), store.ImportantDatePatch{
		Title:       req.Title,
		Date:        date,
		Description: req.Description,
	})

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Important date not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update important date"})
		}
		return
	}

	h.hub.NotifyChanged("important-dates")
	ctx.JSON(http.StatusOK, importantDate)
}

func (h *Handler) DeleteImportantDate(ctx *gin.Context) {
	if err := h.store.DeleteImportantDate(ctx.Request.Context(), ctx.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Important date not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete important date"})
		}
		return
	}

	h.hub.NotifyChanged("important-dates")
	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
