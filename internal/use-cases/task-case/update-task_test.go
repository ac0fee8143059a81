package task_case

import (
	"context"
	"testing"

	task_dto "github.com/Xenn-00/projekt-tafel/internal/dtos/task-dto"
	"github.com/Xenn-00/projekt-tafel/internal/entity"
	app_errors "github.com/Xenn-00/projekt-tafel/internal/errors"
	"github.com/Xenn-00/projekt-tafel/internal/store"
	"github.com/stretchr/testify/assert"
)

func strPtr(v string) *string { return &v }

// Test Happy path
func TestUpdateTask_ShallowMerge(t *testing.T) {
	ctx := context.Background()
	s := store.NewStore()
	service := newTaskService(s)

	resp, err := service.UpdateTask(ctx, "2", "1", &task_dto.UpdateTaskRequest{
		Title: strPtr("Redesign landing page"),
	})

	assert.Nil(t, err)
	assert.Equal(t, "Redesign landing page", resp.Title)
	// nicht angegebene Felder bleiben unangetastet
	assert.Equal(t, "Create modern, responsive landing page", resp.Description)
	assert.Equal(t, entity.TaskInProgress, resp.Status)
	assert.Equal(t, "1", resp.AssigneeID)
	assert.Equal(t, float64(8), resp.ActualHours)
	assert.Equal(t, []string{"design", "frontend"}, resp.Tags)
}

func TestUpdateTask_NotFound(t *testing.T) {
	ctx := context.Background()
	s := store.NewStore()
	service := newTaskService(s)

	before := s.Tasks.Len()

	resp, err := service.UpdateTask(ctx, "2", "999", &task_dto.UpdateTaskRequest{
		Title: strPtr("nope"),
	})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrNotFound, err.Type)
	assert.Equal(t, "task.not_found", err.MessageKey)
	assert.Equal(t, before, s.Tasks.Len())

	// der Bestand bleibt unverändert
	existing, ok := s.Tasks.GetByID("1")
	assert.True(t, ok)
	assert.Equal(t, "Design new landing page", existing.Title)
}

func TestUpdateTask_SetsCompletedAt(t *testing.T) {
	ctx := context.Background()
	s := store.NewStore()
	service := newTaskService(s)

	resp, err := service.UpdateTask(ctx, "2", "1", &task_dto.UpdateTaskRequest{
		Status: strPtr("COMPLETED"),
	})

	assert.Nil(t, err)
	assert.Equal(t, entity.TaskCompleted, resp.Status)
	assert.NotNil(t, resp.CompletedAt)
	assert.NotNil(t, resp.UpdatedAt)
}

func TestUpdateTask_ClearsCompletedAt(t *testing.T) {
	ctx := context.Background()
	s := store.NewStore()
	service := newTaskService(s)

	// Aufgabe "2" ist abgeschlossen und trägt einen Abschlusszeitpunkt
	resp, err := service.UpdateTask(ctx, "2", "2", &task_dto.UpdateTaskRequest{
		Status: strPtr("IN_PROGRESS"),
	})

	assert.Nil(t, err)
	assert.Equal(t, entity.TaskInProgress, resp.Status)
	assert.Nil(t, resp.CompletedAt)
}

func TestUpdateTask_CompletedStaysCompleted(t *testing.T) {
	ctx := context.Background()
	s := store.NewStore()
	service := newTaskService(s)

	before, _ := s.Tasks.GetByID("2")
	originalCompletedAt := *before.CompletedAt

	resp, err := service.UpdateTask(ctx, "2", "2", &task_dto.UpdateTaskRequest{
		Priority: strPtr("LOW"),
	})

	assert.Nil(t, err)
	// ohne Statuswechsel bleibt der Abschlusszeitpunkt stehen
	assert.NotNil(t, resp.CompletedAt)
	assert.Equal(t, originalCompletedAt, *resp.CompletedAt)
	assert.Equal(t, entity.PriorityLow, resp.Priority)
}

func TestUpdateTask_ResolvesRelationships(t *testing.T) {
	ctx := context.Background()
	s := store.NewStore()
	service := newTaskService(s)

	resp, err := service.UpdateTask(ctx, "2", "1", &task_dto.UpdateTaskRequest{
		AssigneeID: strPtr("3"),
	})

	assert.Nil(t, err)
	assert.NotNil(t, resp.Assignee)
	assert.Equal(t, "Emma Davis", resp.Assignee.Name)
}
