package task_case

import (
	"context"
	"testing"

	task_dto "github.com/Xenn-00/projekt-tafel/internal/dtos/task-dto"
	"github.com/Xenn-00/projekt-tafel/internal/store"
	"github.com/stretchr/testify/assert"
)

// Test Happy path
func TestCreateComment_Success(t *testing.T) {
	ctx := context.Background()
	s := store.NewStore()
	service := newTaskService(s)

	before := s.Comments.Len()

	resp, err := service.CreateComment(ctx, "3", &task_dto.CreateCommentRequest{
		Content: "Please add dark mode",
		TaskID:  "1",
	})

	assert.Nil(t, err)
	assert.Equal(t, before+1, s.Comments.Len())
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Please add dark mode", resp.Content)
	// der Aufrufer wird zum Autor, nicht der Request
	assert.Equal(t, "3", resp.AuthorID)
	assert.False(t, resp.IsEdited)
	assert.False(t, resp.CreatedAt.IsZero())
}

func TestCreateComment_ResolvesAuthor(t *testing.T) {
	ctx := context.Background()
	s := store.NewStore()
	service := newTaskService(s)

	resp, err := service.CreateComment(ctx, "1", &task_dto.CreateCommentRequest{
		Content: "On it",
		TaskID:  "2",
	})

	assert.Nil(t, err)
	assert.NotNil(t, resp.Author)
	assert.Equal(t, "Sarah Chen", resp.Author.Name)
}

func TestCreateComment_VisibleOnTask(t *testing.T) {
	ctx := context.Background()
	s := store.NewStore()
	service := newTaskService(s)

	_, err := service.CreateComment(ctx, "1", &task_dto.CreateCommentRequest{
		Content: "Ship it",
		TaskID:  "1",
	})
	assert.Nil(t, err)

	// der neue Kommentar taucht beim Auflösen der Aufgabe mit auf
	task, err := service.GetTask(ctx, "1")
	assert.Nil(t, err)
	assert.Len(t, task.Comments, 2)
	assert.Equal(t, "Ship it", task.Comments[1].Content)
}
