// Package views holds the derived, read-only projections the UI renders:
// upcoming date filters, status partitions and per-class slices. Everything
// here is pure; inputs are never mutated.
package views

import (
	"sort"
	"time"

	"github.com/lifeboard-dev/lifeboard/internal/models"
)

// UpcomingEvents returns events with date >= now, soonest first. Ties keep
// their original relative order.
func UpcomingEvents(events []models.Event, now time.Time) []models.Event {
	out := make([]models.Event, 0, len(events))
	for _, event := range events {
		if !event.Date.Before(now) {
			out = append(out, event)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func UpcomingBikeEvents(events []models.BikeEvent, now time.Time) []models.BikeEvent {
	out := make([]models.BikeEvent, 0, len(events))
	for _, event := range events {
		if !event.Date.Before(now) {
			out = append(out, event)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func UpcomingImportantDates(dates []models.ImportantDate, now time.Time) []models.ImportantDate {
	out := make([]models.ImportantDate, 0, len(dates))
	for _, date := range dates {
		if !date.Date.Before(now) {
			out = append(out, date)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// PartitionWorkItems splits items into pending and completed. The two groups
// are disjoint, cover the input exactly and keep the input's order.
func PartitionWorkItems(items []models.WorkItem) (pending, completed []models.WorkItem) {
	pending = make([]models.WorkItem, 0, len(items))
	completed = make([]models.WorkItem, 0, len(items))
	for _, item := range items {
		if item.Completed {
			completed = append(completed, item)
		} else {
			pending = append(pending, item)
		}
	}
	return pending, completed
}

// WorkItemsForClass filters items to those belonging to the given class.
func WorkItemsForClass(items []models.WorkItem, classID string) []models.WorkItem {
	out := make([]models.WorkItem, 0, len(items))
	for _, item := range items {
		if item.ClassID == classID {
			out = append(out, item)
		}
	}
	return out
}

func ImportantDatesForClass(dates []models.ImportantDate, classID string) []models.ImportantDate {
	out := make([]models.ImportantDate, 0, len(dates))
	for _, date := range dates {
		if date.ClassID == classID {
			out = append(out, date)
		}
	}
	return out
}

// NewestIdeasFirst sorts ideas by createdAt descending.
func NewestIdeasFirst(ideas []models.Idea) []models.Idea {
	out := make([]models.Idea, len(ideas))
	copy(out, ideas)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func NewestBikeIdeasFirst(ideas []models.BikeIdea) []models.BikeIdea {
	out := make([]models.BikeIdea, len(ideas))
	copy(out, ideas)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// WorkoutsByType groups workouts into the three training splits, each group
// most recent first.
func WorkoutsByType(workouts []models.Workout) map[models.WorkoutType][]models.Workout {
	grouped := map[models.WorkoutType][]models.Workout{
		models.WorkoutPush: {},
		models.WorkoutPull: {},
		models.WorkoutLegs: {},
	}
	for _, workout := range workouts {
		grouped[workout.Type] = append(grouped[workout.Type], workout)
	}
	for workoutType := range grouped {
		group := grouped[workoutType]
		sort.SliceStable(group, func(i, j int) bool { return group[i].Date.After(group[j].Date) })
		grouped[workoutType] = group
	}
	return grouped
}
