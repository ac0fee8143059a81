package task_case

import (
	"context"
	"testing"

	task_dto "github.com/Xenn-00/projekt-tafel/internal/dtos/task-dto"
	"github.com/Xenn-00/projekt-tafel/internal/resolver"
	"github.com/Xenn-00/projekt-tafel/internal/store"
	"github.com/stretchr/testify/assert"
)

func newTaskService(s *store.Store) *TaskService {
	return &TaskService{
		store:        s,
		resolver:     resolver.NewResolver(s),
		defaultLimit: 50,
	}
}

// Test Happy path
func TestQueryTasks_NoFilter(t *testing.T) {
	ctx := context.Background()
	s := store.NewStore()
	service := newTaskService(s)

	conn, err := service.QueryTasks(ctx, task_dto.TaskListFilter{})

	assert.Nil(t, err)
	assert.Equal(t, 2, conn.TotalCount)
	assert.Len(t, conn.Tasks, 2)
	assert.False(t, conn.HasMore)

	// Einfügereihenfolge ist die Default-Sortierung
	assert.Equal(t, "1", conn.Tasks[0].ID)
	assert.Equal(t, "2", conn.Tasks[1].ID)
}

func TestQueryTasks_FilterByStatus(t *testing.T) {
	ctx := context.Background()
	s := store.NewStore()
	service := newTaskService(s)

	status := "COMPLETED"
	conn, err := service.QueryTasks(ctx, task_dto.TaskListFilter{Status: &status})

	assert.Nil(t, err)
	assert.Equal(t, 1, conn.TotalCount)
	assert.Len(t, conn.Tasks, 1)
	assert.Equal(t, "2", conn.Tasks[0].ID)
}

func TestQueryTasks_Pagination(t *testing.T) {
	ctx := context.Background()
	s := store.NewStore()
	service := newTaskService(s)

	conn, err := service.QueryTasks(ctx, task_dto.TaskListFilter{Limit: 1, Offset: 1})

	assert.Nil(t, err)
	assert.Equal(t, 2, conn.TotalCount)
	assert.Len(t, conn.Tasks, 1)
	assert.Equal(t, "2", conn.Tasks[0].ID)
	assert.False(t, conn.HasMore)
}

func TestQueryTasks_PaginationHasMore(t *testing.T) {
	ctx := context.Background()
	s := store.NewStore()
	service := newTaskService(s)

	conn, err := service.QueryTasks(ctx, task_dto.TaskListFilter{Limit: 1})

	assert.Nil(t, err)
	assert.Len(t, conn.Tasks, 1)
	assert.Equal(t, "1", conn.Tasks[0].ID)
	assert.True(t, conn.HasMore)
}

func TestQueryTasks_SearchCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	s := store.NewStore()
	service := newTaskService(s)

	search := "graphql"
	conn, err := service.QueryTasks(ctx, task_dto.TaskListFilter{Search: &search})

	assert.Nil(t, err)
	assert.Equal(t, 1, conn.TotalCount)
	assert.Equal(t, "2", conn.Tasks[0].ID)
}

func TestQueryTasks_SearchMatchesDescription(t *testing.T) {
	ctx := context.Background()
	s := store.NewStore()
	service := newTaskService(s)

	search := "responsive"
	conn, err := service.QueryTasks(ctx, task_dto.TaskListFilter{Search: &search})

	assert.Nil(t, err)
	assert.Equal(t, 1, conn.TotalCount)
	assert.Equal(t, "1", conn.Tasks[0].ID)
}

func TestQueryTasks_FiltersCompose(t *testing.T) {
	ctx := context.Background()
	s := store.NewStore()
	service := newTaskService(s)

	// beide Filter treffen nur auf Aufgabe 1 gemeinsam zu
	statusInProgress := "IN_PROGRESS"
	assignee := "1"
	conn, err := service.QueryTasks(ctx, task_dto.TaskListFilter{Status: &statusInProgress, AssigneeID: &assignee})
	assert.Nil(t, err)
	assert.Equal(t, 1, conn.TotalCount)

	// widersprüchliche Filter ergeben die leere Menge
	statusCompleted := "COMPLETED"
	conn, err = service.QueryTasks(ctx, task_dto.TaskListFilter{Status: &statusCompleted, AssigneeID: &assignee})
	assert.Nil(t, err)
	assert.Equal(t, 0, conn.TotalCount)
	assert.Empty(t, conn.Tasks)
}

func TestQueryTasks_ResolvesRelationships(t *testing.T) {
	ctx := context.Background()
	s := store.NewStore()
	service := newTaskService(s)

	conn, err := service.QueryTasks(ctx, task_dto.TaskListFilter{})

	assert.Nil(t, err)
	first := conn.Tasks[0]
	assert.NotNil(t, first.Assignee)
	assert.Equal(t, first.AssigneeID, first.Assignee.ID)
	assert.NotNil(t, first.Project)
	assert.Equal(t, "E-Commerce Platform", first.Project.Name)
	assert.Len(t, first.Comments, 1)
	assert.Equal(t, "Mike Johnson", first.Comments[0].Author.Name)
	assert.Len(t, first.TimeEntries, 2)
	assert.Len(t, first.Watchers, 2)
}

func TestGetTask_FindOrNull(t *testing.T) {
	ctx := context.Background()
	s := store.NewStore()
	service := newTaskService(s)

	resp, err := service.GetTask(ctx, "1")
	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "Design new landing page", resp.Title)

	// unbekannte Id ist kein Fehler, das Ergebnis ist null
	resp, err = service.GetTask(ctx, "does-not-exist")
	assert.Nil(t, err)
	assert.Nil(t, resp)
}
