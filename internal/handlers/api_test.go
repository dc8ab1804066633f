package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeboard-dev/lifeboard/internal/config"
	"github.com/lifeboard-dev/lifeboard/internal/handlers"
	"github.com/lifeboard-dev/lifeboard/internal/models"
	"github.com/lifeboard-dev/lifeboard/internal/router"
	"github.com/lifeboard-dev/lifeboard/internal/store"
	"github.com/lifeboard-dev/lifeboard/internal/views"
)

func newServer(t *testing.T, staticDir string) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	h := handlers.New(store.NewMemoryStore(), handlers.NewHub())

	return router.NewRouter(h, config.Config{
		Port:           "0",
		StaticDir:      staticDir,
		AllowedOrigins: []string{"http://localhost:5173"},
	})
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newServer(t, "")

	w := doJSON(t, r, http.MethodGet, "/api/health", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body["ok"])
}

func TestClassWorkItemScenario(t *testing.T) {
	r := newServer(t, "")

	w := doJSON(t, r, http.MethodPost, "/api/classes", map[string]string{"name": "Algorithms"})
	require.Equal(t, http.StatusCreated, w.Code)

	var class models.Class
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &class))
	require.NotEmpty(t, class.ID)
	assert.Equal(t, "Algorithms", class.Name)
	assert.Equal(t, class.CreatedAt, class.UpdatedAt)

	w = doJSON(t, r, http.MethodPost, "/api/work-items", map[string]string{
		"title":   "HW1",
		"classId": class.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var item models.WorkItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.False(t, item.Completed)

	w = doJSON(t, r, http.MethodGet, "/api/work-items", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.WorkItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))

	pending, completed := views.PartitionWorkItems(views.WorkItemsForClass(items, class.ID))
	require.Len(t, pending, 1)
	assert.Empty(t, completed)
	assert.Equal(t, item.ID, pending[0].ID)

	w = doJSON(t, r, http.MethodPatch, "/api/work-items/"+item.ID, map[string]bool{"completed": true})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.WorkItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.True(t, updated.Completed)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	w = doJSON(t, r, http.MethodGet, "/api/work-items", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))

	pending, completed = views.PartitionWorkItems(views.WorkItemsForClass(items, class.ID))
	assert.Empty(t, pending)
	require.Len(t, completed, 1)
	assert.Equal(t, item.ID, completed[0].ID)
}

func TestCreateClassRequiresName(t *testing.T) {
	r := newServer(t, "")

	w := doJSON(t, r, http.MethodPost, "/api/classes", map[string]string{"name": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIdeasListedNewestFirst(t *testing.T) {
	r := newServer(t, "")

	w := doJSON(t, r, http.MethodPost, "/api/ideas", map[string]string{"content": "A"})
	require.Equal(t, http.StatusCreated, w.Code)

	// Creation timestamps are the sort key; make sure they differ.
	time.Sleep(5 * time.Millisecond)

	w = doJSON(t, r, http.MethodPost, "/api/ideas", map[string]string{"content": "B"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/ideas", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var ideas []models.Idea
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ideas))
	require.Len(t, ideas, 2)
	assert.Equal(t, "B", ideas[0].Content)
	assert.Equal(t, "A", ideas[1].Content)
}

func TestIdeaRejectsUnknownFields(t *testing.T) {
	r := newServer(t, "")

	w := doJSON(t, r, http.MethodPost, "/api/ideas", map[string]any{
		"content": "valid",
		"bogus":   true,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteNonexistentReturnsNotFound(t *testing.T) {
	r := newServer(t, "")

	w := doJSON(t, r, http.MethodDelete, "/api/ideas/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/events/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/workouts/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteIdeaRespondsOK(t *testing.T) {
	r := newServer(t, "")

	w := doJSON(t, r, http.MethodPost, "/api/ideas", map[string]string{"content": "temp"})
	require.Equal(t, http.StatusCreated, w.Code)

	var idea models.Idea
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &idea))

	w = doJSON(t, r, http.MethodDelete, "/api/ideas/"+idea.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body["ok"])

	w = doJSON(t, r, http.MethodGet, "/api/ideas", nil)
	var ideas []models.Idea
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ideas))
	assert.Empty(t, ideas)
}

func TestEventsSortedByDateAscending(t *testing.T) {
	r := newServer(t, "")

	w := doJSON(t, r, http.MethodPost, "/api/events", map[string]string{
		"title": "later",
		"date":  "2026-10-02",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/events", map[string]string{
		"title": "sooner",
		"date":  "2026-10-01",
		"time":  "18:30",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/events", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var events []models.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events, 2)
	assert.Equal(t, "sooner", events[0].Title)
	assert.Equal(t, "18:30", events[0].Time)
	assert.Equal(t, "later", events[1].Title)
}

func TestEventRejectsMalformedDate(t *testing.T) {
	r := newServer(t, "")

	w := doJSON(t, r, http.MethodPost, "/api/events", map[string]string{
		"title": "bad",
		"date":  "not-a-date",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateWorkoutRequiresNamedExercise(t *testing.T) {
	r := newServer(t, "")

	w := doJSON(t, r, http.MethodPost, "/api/workouts", map[string]any{
		"type": "PUSH",
		"date": "2026-09-01",
		"exercises": []map[string]any{
			{"name": "", "sets": 1, "reps": 1, "weight": 0},
		},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "at least one exercise")
}

func TestCreateWorkoutFiltersBlankExercises(t *testing.T) {
	r := newServer(t, "")

	w := doJSON(t, r, http.MethodPost, "/api/workouts", map[string]any{
		"type": "PUSH",
		"date": "2026-09-01",
		"exercises": []map[string]any{
			{"name": "Bench", "sets": 3, "reps": 5, "weight": 135},
			{"name": "", "sets": 1, "reps": 1, "weight": 0},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var workout models.Workout
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &workout))
	require.NotEmpty(t, workout.ID)
	require.Len(t, workout.Exercises, 1)

	exercise := workout.Exercises[0]
	assert.Equal(t, "Bench", exercise.Name)
	assert.Equal(t, 3, exercise.Sets)
	assert.Equal(t, 5, exercise.Reps)
	assert.Equal(t, 135.0, exercise.Weight)
	assert.Equal(t, workout.ID, exercise.WorkoutID)
}

func TestCreateWorkoutRejectsUnknownType(t *testing.T) {
	r := newServer(t, "")

	w := doJSON(t, r, http.MethodPost, "/api/workouts", map[string]any{
		"type": "CARDIO",
		"date": "2026-09-01",
		"exercises": []map[string]any{
			{"name": "Run", "sets": 1, "reps": 1, "weight": 0},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBikeResources(t *testing.T) {
	r := newServer(t, "")

	w := doJSON(t, r, http.MethodPost, "/api/bike/ideas", map[string]string{"content": "new saddle"})
	require.Equal(t, http.StatusCreated, w.Code)

	var idea models.BikeIdea
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &idea))

	w = doJSON(t, r, http.MethodPatch, "/api/bike/ideas/"+idea.ID, map[string]string{"content": "carbon saddle"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.BikeIdea
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "carbon saddle", updated.Content)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	w = doJSON(t, r, http.MethodPost, "/api/bike/events", map[string]string{
		"title": "gravel race",
		"date":  "2026-09-12",
		"type":  "race",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var event models.BikeEvent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &event))
	assert.Equal(t, "race", event.Type)

	w = doJSON(t, r, http.MethodDelete, "/api/bike/events/"+event.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/bike/events", nil)
	var events []models.BikeEvent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	assert.Empty(t, events)
}

func TestCalendarFeed(t *testing.T) {
	r := newServer(t, "")

	w := doJSON(t, r, http.MethodPost, "/api/events", map[string]string{
		"title": "Dentist",
		"date":  "2026-09-03",
		"time":  "09:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/calendar.ics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/calendar")

	feed := w.Body.String()
	assert.Contains(t, feed, "BEGIN:VCALENDAR")
	assert.Contains(t, feed, "Dentist")
	assert.Contains(t, feed, "END:VCALENDAR")
}

func TestSPAFallback(t *testing.T) {
	dist := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dist, "index.html"), []byte("<html>lifeboard</html>"), 0o644))

	r := newServer(t, dist)

	w := doJSON(t, r, http.MethodGet, "/classes/some-client-route", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "lifeboard"))

	w = doJSON(t, r, http.MethodGet, "/api/no-such-endpoint", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
