package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lifeboard-dev/lifeboard/internal/models"
	"github.com/lifeboard-dev/lifeboard/internal/store"
)

type CreateWorkItemRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ClassID     string `json:"classId" binding:"required"`
}

type UpdateWorkItemRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	ClassID     *string `json:"classId"`
}

func (h *Handler) ListWorkItems(ctx *gin.Context) {
	items, err := h.store.ListWorkItems(ctx.Request.Context())

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve work items"})
		return
	}

	if items == nil {
		items = []models.WorkItem{}
	}

	ctx.JSON(http.StatusOK, items)
}

func (h *Handler) CreateWorkItem(ctx *gin.Context) {
	var req CreateWorkItemRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// New work items always start pending.
	item := models.WorkItem{
		Title:       req.Title,
		Description: req.Description,
		Completed:   false,
		ClassID:     req.ClassID,
	}

	if err := h.store.CreateWorkItem(ctx.Request.Context(), &item); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create work item"})
		return
	}

	h.hub.NotifyChanged("work-items")
	ctx.JSON(http.StatusCreated, item)
}

func (h *Handler) UpdateWorkItem(ctx *gin.Context) {
	var req UpdateWorkItemRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Title cannot be empty"})
		return
	}

	item, err := h.store.UpdateWorkItem(ctx.Request.Context(), ctx.Param("id"), store.WorkItemPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		ClassID:     req.ClassID,
	})

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Work item not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update work item"})
		}
		return
	}

	h.hub.NotifyChanged("work-items")
	ctx.JSON(http.StatusOK, item)
}

func (h *Handler) DeleteWorkItem(ctx *gin.Context) {
	if err := h.store.DeleteWorkItem(ctx.Request.Context(), ctx.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Work item not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete work item"})
		}
		return
	}

	h.hub.NotifyChanged("work-items")
	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
