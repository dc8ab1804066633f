// Package store is the persistence contract shared by every entity kind.
// GormStore backs the running server with Postgres; MemoryStore implements
// the identical contract in memory for tests.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/lifeboard-dev/lifeboard/internal/models"
)

// ErrNotFound is returned by get, update and delete operations when no
// entity exists for the given id.
var ErrNotFound = errors.New("entity not found")

type WorkItemPatch struct {
	Title       *string
	Description *string
	Completed   *bool
	ClassID     *string
}

type ImportantDatePatch struct {
	Title       *string
	Date        *time.Time
	Description *string
}

type IdeaPatch struct {
	Content *string
}

type BikeIdeaPatch struct {
	Content *string
}

type BikeEventPatch struct {
	Title       *string
	Date        *time.Time
	Description *string
	Type        *string
}

// Store holds every entity kind keyed by id. List methods return the
// kind-specific default order: classes, work items and ideas newest first,
// date-bearing kinds by date ascending, workouts by date descending with
// exercises attached.
type Store interface {
	ListClasses(ctx context.Context) ([]models.Class, error)
	GetClass(ctx context.Context, id string) (models.Class, error)
	CreateClass(ctx context.Context, class *models.Class) error
	DeleteClass(ctx context.Context, id string) error

	ListWorkItems(ctx context.Context) ([]models.WorkItem, error)
	GetWorkItem(ctx context.Context, id string) (models.WorkItem, error)
	CreateWorkItem(ctx context.Context, item *models.WorkItem) error
	UpdateWorkItem(ctx context.Context, id string, patch WorkItemPatch) (models.WorkItem, error)
	DeleteWorkItem(ctx context.Context, id string) error

	ListImportantDates(ctx context.Context) ([]models.ImportantDate, error)
	GetImportantDate(ctx context.Context, id string) (models.ImportantDate, error)
	CreateImportantDate(ctx context.Context, date *models.ImportantDate) error
	UpdateImportantDate(ctx context.Context, id string, patch ImportantDatePatch) (models.ImportantDate, error)
	DeleteImportantDate(ctx context.Context, id string) error

	ListIdeas(ctx context.Context) ([]models.Idea, error)
	GetIdea(ctx context.Context, id string) (models.Idea, error)
	CreateIdea(ctx context.Context, idea *models.Idea) error
	UpdateIdea(ctx context.Context, id string, patch IdeaPatch) (models.Idea, error)
	DeleteIdea(ctx context.Context, id string) error

	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id string) (models.Event, error)
	CreateEvent(ctx context.Context, event *models.Event) error
	DeleteEvent(ctx context.Context, id string) error

	ListWorkouts(ctx context.Context) ([]models.Workout, error)
	GetWorkout(ctx context.Context, id string) (models.Workout, error)
	CreateWorkout(ctx context.Context, workout *models.Workout) error
	DeleteWorkout(ctx context.Context, id string) error

	ListBikeIdeas(ctx context.Context) ([]models.BikeIdea, error)
	GetBikeIdea(ctx context.Context, id string) (models.BikeIdea, error)
	CreateBikeIdea(ctx context.Context, idea *models.BikeIdea) error
	UpdateBikeIdea(ctx context.Context, id string, patch BikeIdeaPatch) (models.BikeIdea, error)
	DeleteBikeIdea(ctx context.Context, id string) error

	ListBikeEvents(ctx context.Context) ([]models.BikeEvent, error)
	GetBikeEvent(ctx context.Context, id string) (models.BikeEvent, error)
	CreateBikeEvent(ctx context.Context, event *models.BikeEvent) error
	UpdateBikeEvent(ctx context.Context, id string, patch BikeEventPatch) (models.BikeEvent, error)
	DeleteBikeEvent(ctx context.Context, id string) error
}
