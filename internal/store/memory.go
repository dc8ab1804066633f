package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lifeboard-dev/lifeboard/internal/models"
)

// MemoryStore keeps everything in process memory. It exists for tests and
// honors the same contract as GormStore: server-assigned ids and timestamps,
// kind-specific list ordering, ErrNotFound on missing ids.
type MemoryStore struct {
	mu sync.RWMutex

	classes        []models.Class
	workItems      []models.WorkItem
	importantDates []models.ImportantDate
	ideas          []models.Idea
	events         []models.Event
	workouts       []models.Workout
	bikeIdeas      []models.BikeIdea
	bikeEvents     []models.BikeEvent
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// stamp mirrors BaseModel.BeforeCreate for the in-memory path.
func stamp(b *models.BaseModel) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt.IsZero() {
		now := time.Now().UTC()
		b.CreatedAt = now
		b.UpdatedAt = now
	} else if b.UpdatedAt.IsZero() {
		b.UpdatedAt = b.CreatedAt
	}
}

// touch bumps UpdatedAt, always strictly past the previous value even on
// platforms with a coarse clock.
func touch(b *models.BaseModel) {
	now := time.Now().UTC()
	if !now.After(b.UpdatedAt) {
		now = b.UpdatedAt.Add(time.Nanosecond)
	}
	b.UpdatedAt = now
}

// ---- Classes

func (s *MemoryStore) ListClasses(ctx context.Context) ([]models.Class, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Class, len(s.classes))
	copy(out, s.classes)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryStore) GetClass(ctx context.Context, id string) (models.Class, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, class := range s.classes {
		if class.ID == id {
			return class, nil
		}
	}
	return models.Class{}, ErrNotFound
}

func (s *MemoryStore) CreateClass(ctx context.Context, class *models.Class) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&class.BaseModel)
	s.classes = append(s.classes, *class)
	return nil
}

func (s *MemoryStore) DeleteClass(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, class := range s.classes {
		if class.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	s.classes = append(s.classes[:idx], s.classes[idx+1:]...)

	kept := s.workItems[:0]
	for _, item := range s.workItems {
		if item.ClassID != id {
			kept = append(kept, item)
		}
	}
	s.workItems = kept

	keptDates := s.importantDates[:0]
	for _, date := range s.importantDates {
		if date.ClassID != id {
			keptDates = append(keptDates, date)
		}
	}
	s.importantDates = keptDates

	return nil
}

// ---- Work items

func (s *MemoryStore) ListWorkItems(ctx context.Context) ([]models.WorkItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.WorkItem, len(s.workItems))
	copy(out, s.workItems)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryStore) GetWorkItem(ctx context.Context, id string) (models.WorkItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.workItems {
		if item.ID == id {
			return item, nil
		}
	}
	return models.WorkItem{}, ErrNotFound
}

func (s *MemoryStore) CreateWorkItem(ctx context.Context, item *models.WorkItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&item.BaseModel)
	s.workItems = append(s.workItems, *item)
	return nil
}

func (s *MemoryStore) UpdateWorkItem(ctx context.Context, id string, patch WorkItemPatch) (models.WorkItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.workItems {
		if s.workItems[i].ID != id {
			continue
		}
		item := &s.workItems[i]
		if patch.Title != nil {
			item.Title = *patch.Title
		}
		if patch.Description != nil {
			item.Description = *patch.Description
		}
		if patch.Completed != nil {
			item.Completed = *patch.Completed
		}
		if patch.ClassID != nil {
			item.ClassID = *patch.ClassID
		}
		touch(&item.BaseModel)
		return *item, nil
	}
	return models.WorkItem{}, ErrNotFound
}

func (s *MemoryStore) DeleteWorkItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.workItems {
		if item.ID == id {
			s.workItems = append(s.workItems[:i], s.workItems[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ---- Important dates

func (s *MemoryStore) ListImportantDates(ctx context.Context) ([]models.ImportantDate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ImportantDate, len(s.importantDates))
	copy(out, s.importantDates)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (s *MemoryStore) GetImportantDate(ctx context.Context, id string) (models.ImportantDate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, date := range s.importantDates {
		if date.ID == id {
			return date, nil
		}
	}
	return models.ImportantDate{}, ErrNotFound
}

func (s *MemoryStore) CreateImportantDate(ctx context.Context, date *models.ImportantDate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&date.BaseModel)
	s.importantDates = append(s.importantDates, *date)
	return nil
}

func (s *MemoryStore) UpdateImportantDate(ctx context.Context, id string, patch ImportantDatePatch) (models.ImportantDate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.importantDates {
		if s.importantDates[i].ID != id {
			continue
		}
		date := &s.importantDates[i]
		if patch.Title != nil {
			date.Title = *patch.Title
		}
		if patch.Date != nil {
			date.Date = *patch.Date
		}
		if patch.Description != nil {
			date.Description = *patch.Description
		}
		touch(&date.BaseModel)
		return *date, nil
	}
	return models.ImportantDate{}, ErrNotFound
}

func (s *MemoryStore) DeleteImportantDate(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, date := range s.importantDates {
		if date.ID == id {
			s.importantDates = append(s.importantDates[:i], s.importantDates[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ---- Ideas

func (s *MemoryStore) ListIdeas(ctx context.Context) ([]models.Idea, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Idea, len(s.ideas))
	copy(out, s.ideas)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryStore) GetIdea(ctx context.Context, id string) (models.Idea, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, idea := range s.ideas {
		if idea.ID == id {
			return idea, nil
		}
	}
	return models.Idea{}, ErrNotFound
}

func (s *MemoryStore) CreateIdea(ctx context.Context, idea *models.Idea) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&idea.BaseModel)
	s.ideas = append(s.ideas, *idea)
	return nil
}

func (s *MemoryStore) UpdateIdea(ctx context.Context, id string, patch IdeaPatch) (models.Idea, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.ideas {
		if s.ideas[i].ID != id {
			continue
		}
		idea := &s.ideas[i]
		if patch.Content != nil {
			idea.Content = *patch.Content
		}
		touch(&idea.BaseModel)
		return *idea, nil
	}
	return models.Idea{}, ErrNotFound
}

func (s *MemoryStore) DeleteIdea(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, idea := range s.ideas {
		if idea.ID == id {
			s.ideas = append(s.ideas[:i], s.ideas[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ---- Events

func (s *MemoryStore) ListEvents(ctx context.Context) ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Event, len(s.events))
	copy(out, s.events)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (s *MemoryStore) GetEvent(ctx context.Context, id string) (models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, event := range s.events {
		if event.ID == id {
			return event, nil
		}
	}
	return models.Event{}, ErrNotFound
}

func (s *MemoryStore) CreateEvent(ctx context.Context, event *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&event.BaseModel)
	s.events = append(s.events, *event)
	return nil
}

func (s *MemoryStore) DeleteEvent(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, event := range s.events {
		if event.ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ---- Workouts

func (s *MemoryStore) ListWorkouts(ctx context.Context) ([]models.Workout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Workout, len(s.workouts))
	for i, workout := range s.workouts {
		out[i] = copyWorkout(workout)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *MemoryStore) GetWorkout(ctx context.Context, id string) (models.Workout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, workout := range s.workouts {
		if workout.ID == id {
			return copyWorkout(workout), nil
		}
	}
	return models.Workout{}, ErrNotFound
}

func (s *MemoryStore) CreateWorkout(ctx context.Context, workout *models.Workout) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&workout.BaseModel)
	for i := range workout.Exercises {
		if workout.Exercises[i].ID == "" {
			workout.Exercises[i].ID = uuid.NewString()
		}
		workout.Exercises[i].WorkoutID = workout.ID
	}
	s.workouts = append(s.workouts, copyWorkout(*workout))
	return nil
}

func (s *MemoryStore) DeleteWorkout(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, workout := range s.workouts {
		if workout.ID == id {
			s.workouts = append(s.workouts[:i], s.workouts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func copyWorkout(workout models.Workout) models.Workout {
	exercises := make([]models.Exercise, len(workout.Exercises))
	copy(exercises, workout.Exercises)
	workout.Exercises = exercises
	return workout
}

// ---- Bike ideas

func (s *MemoryStore) ListBikeIdeas(ctx context.Context) ([]models.BikeIdea, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.BikeIdea, len(s.bikeIdeas))
	copy(out, s.bikeIdeas)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryStore) GetBikeIdea(ctx context.Context, id string) (models.BikeIdea, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, idea := range s.bikeIdeas {
		if idea.ID == id {
			return idea, nil
		}
	}
	return models.BikeIdea{}, ErrNotFound
}

func (s *MemoryStore) CreateBikeIdea(ctx context.Context, idea *models.BikeIdea) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&idea.BaseModel)
	s.bikeIdeas = append(s.bikeIdeas, *idea)
	return nil
}

func (s *MemoryStore) UpdateBikeIdea(ctx context.Context, id string, patch BikeIdeaPatch) (models.BikeIdea, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bikeIdeas {
		if s.bikeIdeas[i].ID != id {
			continue
		}
		idea := &s.bikeIdeas[i]
		if patch.Content != nil {
			idea.Content = *patch.Content
		}
		touch(&idea.BaseModel)
		return *idea, nil
	}
	return models.BikeIdea{}, ErrNotFound
}

func (s *MemoryStore) DeleteBikeIdea(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, idea := range s.bikeIdeas {
		if idea.ID == id {
			s.bikeIdeas = append(s.bikeIdeas[:i], s.bikeIdeas[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ---- Bike events

func (s *MemoryStore) ListBikeEvents(ctx context.Context) ([]models.BikeEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.BikeEvent, len(s.bikeEvents))
	copy(out, s.bikeEvents)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (s *MemoryStore) GetBikeEvent(ctx context.Context, id string) (models.BikeEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, event := range s.bikeEvents {
		if event.ID == id {
			return event, nil
		}
	}
	return models.BikeEvent{}, ErrNotFound
}

func (s *MemoryStore) CreateBikeEvent(ctx context.Context, event *models.BikeEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&event.BaseModel)
	s.bikeEvents = append(s.bikeEvents, *event)
	return nil
}

func (s *MemoryStore) UpdateBikeEvent(ctx context.Context, id string, patch BikeEventPatch) (models.BikeEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bikeEvents {
		if s.bikeEvents[i].ID != id {
			continue
		}
		event := &s.bikeEvents[i]
		if patch.Title != nil {
			event.Title = *patch.Title
		}
		if patch.Date != nil {
			event.Date = *patch.Date
		}
		if patch.Description != nil {
			event.Description = *patch.Description
		}
		if patch.Type != nil {
			event.Type = *patch.Type
		}
		touch(&event.BaseModel)
		return *event, nil
	}
	return models.BikeEvent{}, ErrNotFound
}

func (s *MemoryStore) DeleteBikeEvent(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, event := range s.bikeEvents {
		if event.ID == id {
			s.bikeEvents = append(s.bikeEvents[:i], s.bikeEvents[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

var _ Store = (*MemoryStore)(nil)
var _ Store = (*GormStore)(nil)
