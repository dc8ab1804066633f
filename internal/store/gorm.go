package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lifeboard-dev/lifeboard/internal/models"
)

// GormStore persists entities in Postgres through gorm.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ---- Classes

func (s *GormStore) ListClasses(ctx context.Context) ([]models.Class, error) {
	var classes []models.Class
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func (s *GormStore) GetClass(ctx context.Context, id string) (models.Class, error) {
	var class models.Class
	if err := s.db.WithContext(ctx).First(&class, "id = ?", id).Error; err != nil {
		return models.Class{}, translate(err)
	}
	return class, nil
}

func (s *GormStore) CreateClass(ctx context.Context, class *models.Class) error {
	return s.db.WithContext(ctx).Create(class).Error
}

// DeleteClass cascades to the class's work items and important dates in a
// single transaction, mirroring the schema-level ON DELETE CASCADE.
func (s *GormStore) DeleteClass(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var class models.Class
		if err := tx.First(&class, "id = ?", id).Error; err != nil {
			return translate(err)
		}
		if err := tx.Where("class_id = ?", id).Delete(&models.WorkItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("class_id = ?", id).Delete(&models.ImportantDate{}).Error; err != nil {
			return err
		}
		return tx.Delete(&class).Error
	})
}

// ---- Work items

func (s *GormStore) ListWorkItems(ctx context.Context) ([]models.WorkItem, error) {
	var items []models.WorkItem
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) GetWorkItem(ctx context.Context, id string) (models.WorkItem, error) {
	var item models.WorkItem
	if err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return models.WorkItem{}, translate(err)
	}
	return item, nil
}

func (s *GormStore) CreateWorkItem(ctx context.Context, item *models.WorkItem) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *GormStore) UpdateWorkItem(ctx context.Context, id string, patch WorkItemPatch) (models.WorkItem, error) {
	var item models.WorkItem
	if err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return models.WorkItem{}, translate(err)
	}

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

	if err := s.db.WithContext(ctx).Save(&item).Error; err != nil {
		return models.WorkItem{}, err
	}
	return item, nil
}

func (s *GormStore) DeleteWorkItem(ctx context.Context, id string) error {
	return s.deleteByID(ctx, &models.WorkItem{}, id)
}

// ---- Important dates

func (s *GormStore) ListImportantDates(ctx context.Context) ([]models.ImportantDate, error) {
	var dates []models.ImportantDate
	if err := s.db.WithContext(ctx).Order("date ASC").Find(&dates).Error; err != nil {
		return nil, err
	}
	return dates, nil
}

func (s *GormStore) GetImportantDate(ctx context.Context, id string) (models.ImportantDate, error) {
	var date models.ImportantDate
	if err := s.db.WithContext(ctx).First(&date, "id = ?", id).Error; err != nil {
		return models.ImportantDate{}, translate(err)
	}
	return date, nil
}

func (s *GormStore) CreateImportantDate(ctx context.Context, date *models.ImportantDate) error {
	return s.db.WithContext(ctx).Create(date).Error
}

func (s *GormStore) UpdateImportantDate(ctx context.Context, id string, patch ImportantDatePatch) (models.ImportantDate, error) {
	var date models.ImportantDate
	if err := s.db.WithContext(ctx).First(&date, "id = ?", id).Error; err != nil {
		return models.ImportantDate{}, translate(err)
	}

	if patch.Title != nil {
		date.Title = *patch.Title
	}
	if patch.Date != nil {
		date.Date = *patch.Date
	}
	if patch.Description != nil {
		date.Description = *patch.Description
	}

	if err := s.db.WithContext(ctx).Save(&date).Error; err != nil {
		return models.ImportantDate{}, err
	}
	return date, nil
}

func (s *GormStore) DeleteImportantDate(ctx context.Context, id string) error {
	return s.deleteByID(ctx, &models.ImportantDate{}, id)
}

// ---- Ideas

func (s *GormStore) ListIdeas(ctx context.Context) ([]models.Idea, error) {
	var ideas []models.Idea
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&ideas).Error; err != nil {
		return nil, err
	}
	return ideas, nil
}

func (s *GormStore) GetIdea(ctx context.Context, id string) (models.Idea, error) {
	var idea models.Idea
	if err := s.db.WithContext(ctx).First(&idea, "id = ?", id).Error; err != nil {
		return models.Idea{}, translate(err)
	}
	return idea, nil
}

func (s *GormStore) CreateIdea(ctx context.Context, idea *models.Idea) error {
	return s.db.WithContext(ctx).Create(idea).Error
}

func (s *GormStore) UpdateIdea(ctx context.Context, id string, patch IdeaPatch) (models.Idea, error) {
	var idea models.Idea
	if err := s.db.WithContext(ctx).First(&idea, "id = ?", id).Error; err != nil {
		return models.Idea{}, translate(err)
	}

	if patch.Content != nil {
		idea.Content = *patch.Content
	}

	if err := s.db.WithContext(ctx).Save(&idea).Error; err != nil {
		return models.Idea{}, err
	}
	return idea, nil
}

func (s *GormStore) DeleteIdea(ctx context.Context, id string) error {
	return s.deleteByID(ctx, &models.Idea{}, id)
}

// ---- Events

func (s *GormStore) ListEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := s.db.WithContext(ctx).Order("date ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *GormStore) GetEvent(ctx context.Context, id string) (models.Event, error) {
	var event models.Event
	if err := s.db.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		return models.Event{}, translate(err)
	}
	return event, nil
}

func (s *GormStore) CreateEvent(ctx context.Context, event *models.Event) error {
	return s.db.WithContext(ctx).Create(event).Error
}

func (s *GormStore) DeleteEvent(ctx context.Context, id string) error {
	return s.deleteByID(ctx, &models.Event{}, id)
}

// ---- Workouts

func (s *GormStore) ListWorkouts(ctx context.Context) ([]models.Workout, error) {
	var workouts []models.Workout
	if err := s.db.WithContext(ctx).Preload("Exercises").Order("date DESC").Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (s *GormStore) GetWorkout(ctx context.Context, id string) (models.Workout, error) {
	var workout models.Workout
	if err := s.db.WithContext(ctx).Preload("Exercises").First(&workout, "id = ?", id).Error; err != nil {
		return models.Workout{}, translate(err)
	}
	return workout, nil
}

// CreateWorkout persists the workout and its exercises as a single unit;
// a failure leaves no orphaned exercise rows.
func (s *GormStore) CreateWorkout(ctx context.Context, workout *models.Workout) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(workout).Error
	})
}

// DeleteWorkout removes the workout and its exercises atomically.
func (s *GormStore) DeleteWorkout(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var workout models.Workout
		if err := tx.First(&workout, "id = ?", id).Error; err != nil {
			return translate(err)
		}
		if err := tx.Where("workout_id = ?", id).Delete(&models.Exercise{}).Error; err != nil {
			return err
		}
		return tx.Delete(&workout).Error
	})
}

// ---- Bike ideas

func (s *GormStore) ListBikeIdeas(ctx context.Context) ([]models.BikeIdea, error) {
	var ideas []models.BikeIdea
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&ideas).Error; err != nil {
		return nil, err
	}
	return ideas, nil
}

func (s *GormStore) GetBikeIdea(ctx context.Context, id string) (models.BikeIdea, error) {
	var idea models.BikeIdea
	if err := s.db.WithContext(ctx).First(&idea, "id = ?", id).Error; err != nil {
		return models.BikeIdea{}, translate(err)
	}
	return idea, nil
}

func (s *GormStore) CreateBikeIdea(ctx context.Context, idea *models.BikeIdea) error {
	return s.db.WithContext(ctx).Create(idea).Error
}

func (s *GormStore) UpdateBikeIdea(ctx context.Context, id string, patch BikeIdeaPatch) (models.BikeIdea, error) {
	var idea models.BikeIdea
	if err := s.db.WithContext(ctx).First(&idea, "id = ?", id).Error; err != nil {
		return models.BikeIdea{}, translate(err)
	}

	if patch.Content != nil {
		idea.Content = *patch.Content
	}

	if err := s.db.WithContext(ctx).Save(&idea).Error; err != nil {
		return models.BikeIdea{}, err
	}
	return idea, nil
}

func (s *GormStore) DeleteBikeIdea(ctx context.Context, id string) error {
	return s.deleteByID(ctx, &models.BikeIdea{}, id)
}

// ---- Bike events

func (s *GormStore) ListBikeEvents(ctx context.Context) ([]models.BikeEvent, error) {
	var events []models.BikeEvent
	if err := s.db.WithContext(ctx).Order("date ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *GormStore) GetBikeEvent(ctx context.Context, id string) (models.BikeEvent, error) {
	var event models.BikeEvent
	if err := s.db.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		return models.BikeEvent{}, translate(err)
	}
	return event, nil
}

func (s *GormStore) CreateBikeEvent(ctx context.Context, event *models.BikeEvent) error {
	return s.db.WithContext(ctx).Create(event).Error
}

func (s *GormStore) UpdateBikeEvent(ctx context.Context, id string, patch BikeEventPatch) (models.BikeEvent, error) {
	var event models.BikeEvent
	if err := s.db.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		return models.BikeEvent{}, translate(err)
	}

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

	if err := s.db.WithContext(ctx).Save(&event).Error; err != nil {
		return models.BikeEvent{}, err
	}
	return event, nil
}

func (s *GormStore) DeleteBikeEvent(ctx context.Context, id string) error {
	return s.deleteByID(ctx, &models.BikeEvent{}, id)
}

// deleteByID deletes a single row, reporting ErrNotFound when nothing matched.
func (s *GormStore) deleteByID(ctx context.Context, model interface{}, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
