package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifeboard-dev/lifeboard/internal/models"
	"github.com/lifeboard-dev/lifeboard/internal/store"
)

type CreateIdeaRequest struct {
	Content string `json:"content" binding:"required"`
}

type UpdateIdeaRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *Handler) ListIdeas(ctx *gin.Context) {
	ideas, err := h.store.ListIdeas(ctx.Request.Context())

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ideas"})
		return
	}

	if ideas == nil {
		ideas = []models.Idea{}
	}

	ctx.JSON(http.StatusOK, ideas)
}

func (h *Handler) CreateIdea(ctx *gin.Context) {
	var req CreateIdeaRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	idea := models.Idea{Content: req.Content}

	if err := h.store.CreateIdea(ctx.Request.Context(), &idea); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create idea"})
		return
	}

	h.hub.NotifyChanged("ideas")
	ctx.JSON(http.StatusCreated, idea)
}

func (h *Handler) UpdateIdea(ctx *gin.Context) {
	var req UpdateIdeaRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	idea, err := h.store.UpdateIdea(ctx.Request.Context(), ctx.Param("id"), store.IdeaPatch{
		Content: &req.Content,
	})

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update idea"})
		}
		return
	}

	h.hub.NotifyChanged("ideas")
	ctx.JSON(http.StatusOK, idea)
}

func (h *Handler) DeleteIdea(ctx *gin.Context) {
	if err := h.store.DeleteIdea(ctx.Request.Context(), ctx.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete idea"})
		}
		return
	}

	h.hub.NotifyChanged("ideas")
	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
