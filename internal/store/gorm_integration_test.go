//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lifeboard-dev/lifeboard/db"
	"github.com/lifeboard-dev/lifeboard/internal/models"
)

func setupPostgres(t *testing.T) *GormStore {
	t.Helper()
	ctx := context.Background()

	pg, err := postgrescontainer.RunContainer(ctx,
		postgrescontainer.WithDatabase("lifeboard"),
		postgrescontainer.WithUsername("lifeboard"),
		postgrescontainer.WithPassword("lifeboard"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	gdb := waitForDatabase(t, dsn)
	require.NoError(t, db.Migrate(gdb))

	return NewGormStore(gdb)
}

func waitForDatabase(t *testing.T, dsn string) *gorm.DB {
	t.Helper()

	deadline := time.Now().Add(30 * time.Second)
	for {
		gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			if sqlDB, dbErr := gdb.DB(); dbErr == nil && sqlDB.Ping() == nil {
				return gdb
			}
		}
		if time.Now().After(deadline) {
			t.Fatalf("database did not become ready: %v", err)
		}
		time.Sleep(500 * time.Millisecond)
	}
}

func TestGormStoreRoundTrip(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	class := models.Class{Name: "Algorithms"}
	require.NoError(t, s.CreateClass(ctx, &class))
	require.NotEmpty(t, class.ID)
	assert.Equal(t, class.CreatedAt, class.UpdatedAt)

	fetched, err := s.GetClass(ctx, class.ID)
	require.NoError(t, err)
	assert.Equal(t, class.ID, fetched.ID)
	assert.Equal(t, "Algorithms", fetched.Name)

	item := models.WorkItem{Title: "HW1", ClassID: class.ID}
	require.NoError(t, s.CreateWorkItem(ctx, &item))

	updated, err := s.UpdateWorkItem(ctx, item.ID, WorkItemPatch{Completed: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	_, err = s.UpdateWorkItem(ctx, "missing", WorkItemPatch{Completed: boolPtr(true)})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormStoreWorkoutAtomicity(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	workout := models.Workout{
		Type: models.WorkoutPush,
		Date: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Exercises: []models.Exercise{
			{Name: "Bench", Sets: 3, Reps: 5, Weight: 135},
			{Name: "Dips", Sets: 3, Reps: 12, Weight: 0},
		},
	}
	require.NoError(t, s.CreateWorkout(ctx, &workout))

	fetched, err := s.GetWorkout(ctx, workout.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Exercises, 2)
	for _, exercise := range fetched.Exercises {
		assert.Equal(t, workout.ID, exercise.WorkoutID)
	}

	require.NoError(t, s.DeleteWorkout(ctx, workout.ID))

	_, err = s.GetWorkout(ctx, workout.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.DeleteWorkout(ctx, workout.ID), ErrNotFound)
}

func TestGormStoreListOrdering(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	early := models.Event{Title: "sooner", Date: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)}
	late := models.Event{Title: "later", Date: time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, s.CreateEvent(ctx, &late))
	require.NoError(t, s.CreateEvent(ctx, &early))

	events, err := s.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "sooner", events[0].Title)
}
