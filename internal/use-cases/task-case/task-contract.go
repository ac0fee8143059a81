package task_case

import (
	"context"

	task_dto "github.com/Xenn-00/projekt-tafel/internal/dtos/task-dto"
	app_errors "github.com/Xenn-00/projekt-tafel/internal/errors"
)

type TaskServiceContract interface {
	QueryTasks(ctx context.Context, filter task_dto.TaskListFilter) (*task_dto.TaskConnection, *app_errors.AppError)
	GetTask(ctx context.Context, taskID string) (*task_dto.TaskResponse, *app_errors.AppError)
	CreateTask(ctx context.Context, actorID string, req *task_dto.CreateTaskRequest) (*task_dto.TaskResponse, *app_errors.AppError)
	UpdateTask(ctx context.Context, actorID, taskID string, req *task_dto.UpdateTaskRequest) (*task_dto.TaskResponse, *app_errors.AppError)
	DeleteTask(ctx context.Context, actorID, taskID string) (bool, *app_errors.AppError)
	CreateComment(ctx context.Context, actorID string, req *task_dto.CreateCommentRequest) (*task_dto.CommentResponse, *app_errors.AppError)
	LogTime(ctx context.Context, actorID string, req *task_dto.LogTimeRequest) (*task_dto.TimeEntryResponse, *app_errors.AppError)
}
