package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifeboard-dev/lifeboard/internal/models"
)

type CreateClassRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *Handler) ListClasses(ctx *gin.Context) {
	classes, err := h.store.ListClasses(ctx.Request.Context())

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve classes"})
		return
	}

	if classes == nil {
		classes = []models.Class{}
	}

	ctx.JSON(http.StatusOK, classes)
}

func (h *Handler) CreateClass(ctx *gin.Context) {
	var req CreateClassRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	class := models.Class{Name: req.Name}

	if err := h.store.CreateClass(ctx.Request.Context(), &class); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create class"})
		return
	}

	h.hub.NotifyChanged("classes")
	ctx.JSON(http.StatusCreated, class)
}
