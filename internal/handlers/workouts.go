package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lifeboard-dev/lifeboard/internal/models"
	"github.com/lifeboard-dev/lifeboard/internal/store"
)

type ExerciseInput struct {
	Name   string  `json:"name"`
	Sets   int     `json:"sets"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

type CreateWorkoutRequest struct {
	Type      string          `json:"type" binding:"required,oneof=PUSH PULL LEGS"`
	Date      string          `json:"date" binding:"required"`
	Notes     string          `json:"notes"`
	Exercises []ExerciseInput `json:"exercises"`
}

func (h *Handler) ListWorkouts(ctx *gin.Context) {
	workouts, err := h.store.ListWorkouts(ctx.Request.Context())

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve workouts"})
		return
	}

	if workouts == nil {
		workouts = []models.Workout{}
	}

	for i := range workouts {
		if workouts[i].Exercises == nil {
			workouts[i].Exercises = []models.Exercise{}
		}
	}

	ctx.JSON(http.StatusOK, workouts)
}

// CreateWorkout drops exercises without a name, rejects the request if none
// remain, then persists the workout and surviving exercises as one unit.
func (h *Handler) CreateWorkout(ctx *gin.Context) {
	var req CreateWorkoutRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exercises := make([]models.Exercise, 0, len(req.Exercises))
	for _, input := range req.Exercises {
		if strings.TrimSpace(input.Name) == "" {
			continue
		}
		exercises = append(exercises, models.Exercise{
			Name:   input.Name,
			Sets:   max(input.Sets, 1),
			Reps:   max(input.Reps, 1),
			Weight: max(input.Weight, 0),
		})
	}

	if len(exercises) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "at least one exercise required"})
		return
	}

	workout := models.Workout{
		Type:      models.WorkoutType(req.Type),
		Date:      date,
		Notes:     req.Notes,
		Exercises: exercises,
	}

	if err := h.store.CreateWorkout(ctx.Request.Context(), &workout); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create workout"})
		return
	}

	h.hub.NotifyChanged("workouts")
	ctx.JSON(http.StatusCreated, workout)
}

// DeleteWorkout removes the workout and its exercises together.
func (h *Handler) DeleteWorkout(ctx *gin.Context) {
	if err := h.store.DeleteWorkout(ctx.Request.Context(), ctx.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete workout"})
		}
		return
	}

	h.hub.NotifyChanged("workouts")
	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
