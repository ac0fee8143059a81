package task_dto

import (
	"time"

	"github.com/Xenn-00/projekt-tafel/internal/entity"
	"github.com/go-playground/validator/v10"
)

type CreateTaskRequest struct {
	Title          string   `json:"title" validate:"required"`
	Description    string   `json:"description" validate:"required"`
	Status         string   `json:"status" validate:"required,taskStatus"`
	Priority       string   `json:"priority" validate:"required,taskPriority"`
	AssigneeID     string   `json:"assigneeId" validate:"required"`
	ReporterID     string   `json:"reporterId" validate:"required"`
	ProjectID      *string  `json:"projectId,omitempty"`
	DueDate        string   `json:"dueDate" validate:"required,isoDate"`
	EstimatedHours *float64 `json:"estimatedHours,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	WatcherIDs     []string `json:"watcherIds,omitempty"`
}

// UpdateTaskRequest ist ein Shallow-Merge-Patch: nur gesetzte Felder
// überschreiben den Bestand, fehlende Felder bleiben unangetastet.
type UpdateTaskRequest struct {
	Title          *string  `json:"title,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Status         *string  `json:"status,omitempty" validate:"omitempty,taskStatus"`
	Priority       *string  `json:"priority,omitempty" validate:"omitempty,taskPriority"`
	AssigneeID     *string  `json:"assigneeId,omitempty"`
	ProjectID      *string  `json:"projectId,omitempty"`
	DueDate        *string  `json:"dueDate,omitempty" validate:"omitempty,isoDate"`
	EstimatedHours *float64 `json:"estimatedHours,omitempty"`
	ActualHours    *float64 `json:"actualHours,omitempty" validate:"omitempty,min=0"`
	Tags           []string `json:"tags,omitempty"`
}

type TaskListFilter struct {
	Status     *string `json:"status,omitempty" validate:"omitempty,taskStatus"`
	Priority   *string `json:"priority,omitempty" validate:"omitempty,taskPriority"`
	AssigneeID *string `json:"assigneeId,omitempty"`
	ProjectID  *string `json:"projectId,omitempty"`
	Search     *string `json:"search,omitempty"`
	Limit      int     `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
	Offset     int     `json:"offset,omitempty" validate:"omitempty,min=0"`
}

type CreateCommentRequest struct {
	Content    string   `json:"content" validate:"required"`
	TaskID     string   `json:"taskId" validate:"required"`
	MentionIDs []string `json:"mentionIds,omitempty"`
}

type LogTimeRequest struct {
	TaskID      string  `json:"taskId" validate:"required"`
	Hours       float64 `json:"hours" validate:"required,gt=0"`
	Description *string `json:"description,omitempty"`
	Date        string  `json:"date" validate:"required,isoDate"`
	Billable    bool    `json:"billable"`
}

type StatisticsFilter struct {
	ProjectID *string `json:"projectId,omitempty"`
	UserID    *string `json:"userId,omitempty"`
	DateFrom  *string `json:"dateFrom,omitempty" validate:"omitempty,isoDate"`
	DateTo    *string `json:"dateTo,omitempty" validate:"omitempty,isoDate"`
}

// Variable-Hüllen, exakt der Form der GraphQL-Variablenobjekte entsprechend.

type CreateTaskVariables struct {
	Input CreateTaskRequest `json:"input" validate:"required"`
}

type UpdateTaskVariables struct {
	ID    string            `json:"id" validate:"required"`
	Input UpdateTaskRequest `json:"input"`
}

type DeleteTaskVariables struct {
	ID string `json:"id" validate:"required"`
}

type GetTaskVariables struct {
	ID string `json:"id" validate:"required"`
}

type CreateCommentVariables struct {
	Input CreateCommentRequest `json:"input" validate:"required"`
}

type LogTimeVariables struct {
	Input LogTimeRequest `json:"input" validate:"required"`
}

func IsValidTaskStatus(fl validator.FieldLevel) bool {
	switch entity.TaskStatus(fl.Field().String()) {
	case entity.TaskBacklog, entity.TaskTodo, entity.TaskInProgress,
		entity.TaskInReview, entity.TaskBlocked, entity.TaskCompleted, entity.TaskCancelled:
		return true
	default:
		return false
	}
}

func IsValidTaskPriority(fl validator.FieldLevel) bool {
	switch entity.Priority(fl.Field().String()) {
	case entity.PriorityLowest, entity.PriorityLow, entity.PriorityMedium,
		entity.PriorityHigh, entity.PriorityHighest:
		return true
	default:
		return false
	}
}

func IsValidISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	if err != nil {
		_, err = time.Parse(time.RFC3339, fl.Field().String())
	}
	return err == nil
}
