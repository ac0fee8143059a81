package stats_case

import (
	"context"
	"time"

	task_dto "github.com/Xenn-00/projekt-tafel/internal/dtos/task-dto"
	"github.com/Xenn-00/projekt-tafel/internal/entity"
	app_errors "github.com/Xenn-00/projekt-tafel/internal/errors"
	"github.com/Xenn-00/projekt-tafel/internal/store"
)

type StatsService struct {
	store *store.Store
	now   func() time.Time
}

func NewStatsService(s *store.Store) StatsServiceContract {
	return &StatsService{
		store: s,
		now:   time.Now,
	}
}

func (s *StatsService) TaskStatistics(ctx context.Context, filter task_dto.StatisticsFilter) (*task_dto.TaskStatistics, *app_errors.AppError) {
	s.store.Lock()
	defer s.store.Unlock()

	now := s.now()
	today := truncateToDay(now)
	weekStart := startOfISOWeek(today)

	stats := &task_dto.TaskStatistics{}

	var completedCount int
	var completionHours float64
	for _, t := range s.store.Tasks.GetAll() {
		if !inWindow(t, &filter) {
			continue
		}

		stats.Total++
		switch t.Status {
		case entity.TaskBacklog:
			stats.Backlog++
		case entity.TaskTodo:
			stats.Todo++
		case entity.TaskInProgress:
			stats.InProgress++
		case entity.TaskInReview:
			stats.InReview++
		case entity.TaskBlocked:
			stats.Blocked++
		case entity.TaskCompleted:
			stats.Completed++
		case entity.TaskCancelled:
			stats.Cancelled++
		}

		if t.Priority == entity.PriorityHigh || t.Priority == entity.PriorityHighest {
			stats.HighPriority++
		}

		if t.Status != entity.TaskCompleted {
			if due, err := parseDate(t.DueDate); err == nil && due.Before(today) {
				stats.Overdue++
			}
		}

		if t.CompletedAt == nil {
			continue
		}

		completedCount++
		completionHours += t.CompletedAt.Sub(t.CreatedAt).Hours()

		if !t.CompletedAt.Before(weekStart) && t.CompletedAt.Before(weekStart.AddDate(0, 0, 7)) {
			stats.CompletedThisWeek++
		}
		if t.CompletedAt.Year() == now.Year() && t.CompletedAt.Month() == now.Month() {
			stats.CompletedThisMonth++
		}
	}

	if completedCount > 0 {
		stats.AverageCompletionTime = completionHours / float64(completedCount)
	}

	return stats, nil
}

// inWindow wendet die optionalen Statistik-Filter an: projectId und userId
// schränken die Aufgabenmenge ein, dateFrom/dateTo begrenzen createdAt
// (beide inklusiv).
func inWindow(t *entity.TaskEntity, filter *task_dto.StatisticsFilter) bool {
	if filter.ProjectID != nil && (t.ProjectID == nil || *t.ProjectID != *filter.ProjectID) {
		return false
	}
	if filter.UserID != nil && t.AssigneeID != *filter.UserID {
		return false
	}
	if filter.DateFrom != nil {
		if from, err := parseDate(*filter.DateFrom); err == nil && t.CreatedAt.Before(from) {
			return false
		}
	}
	if filter.DateTo != nil {
		if to, err := parseDate(*filter.DateTo); err == nil && !t.CreatedAt.Before(to.AddDate(0, 0, 1)) {
			return false
		}
	}
	return true
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		d, err = time.Parse(time.RFC3339, s)
	}
	return d, err
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfISOWeek liefert den Montag der Woche, in der t liegt.
func startOfISOWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return t.AddDate(0, 0, -(weekday - 1))
}
