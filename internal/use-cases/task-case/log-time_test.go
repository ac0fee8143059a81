package task_case

import (
	"context"
	"testing"

	task_dto "github.com/Xenn-00/projekt-tafel/internal/dtos/task-dto"
	app_errors "github.com/Xenn-00/projekt-tafel/internal/errors"
	"github.com/Xenn-00/projekt-tafel/internal/store"
	"github.com/stretchr/testify/assert"
)

// Test Happy path
func TestLogTime_Success(t *testing.T) {
	ctx := context.Background()
	s := store.NewStore()
	service := newTaskService(s)

	entriesBefore := s.TimeEntries.Len()

	resp, err := service.LogTime(ctx, "1", &task_dto.LogTimeRequest{
		TaskID:      "1",
		Hours:       4,
		Description: strPtr("Navigation polish"),
		Date:        "2025-11-28",
		Billable:    true,
	})

	assert.Nil(t, err)
	assert.Equal(t, entriesBefore+1, s.TimeEntries.Len())
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "1", resp.UserID)
	assert.Equal(t, float64(4), resp.Hours)
	assert.True(t, resp.Billable)
	assert.NotNil(t, resp.User)
	assert.Equal(t, "Sarah Chen", resp.User.Name)

	// der Stundenzähler der Aufgabe wächst um genau die gebuchten Stunden
	task, _ := s.Tasks.GetByID("1")
	assert.Equal(t, float64(12), task.ActualHours)
}

func TestLogTime_TaskNotFound(t *testing.T) {
	ctx := context.Background()
	s := store.NewStore()
	service := newTaskService(s)

	entriesBefore := s.TimeEntries.Len()

	resp, err := service.LogTime(ctx, "1", &task_dto.LogTimeRequest{
		TaskID: "999",
		Hours:  2,
		Date:   "2025-11-28",
	})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrNotFound, err.Type)
	// ohne Aufgabe wird auch kein Eintrag angelegt
	assert.Equal(t, entriesBefore, s.TimeEntries.Len())
}

func TestLogTime_Accumulates(t *testing.T) {
	ctx := context.Background()
	s := store.NewStore()
	service := newTaskService(s)

	for _, hours := range []float64{1.5, 2.5} {
		_, err := service.LogTime(ctx, "2", &task_dto.LogTimeRequest{
			TaskID: "2",
			Hours:  hours,
			Date:   "2025-11-28",
		})
		assert.Nil(t, err)
	}

	task, _ := s.Tasks.GetByID("2")
	assert.Equal(t, float64(22), task.ActualHours)
}
