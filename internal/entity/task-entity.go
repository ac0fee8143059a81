package entity

import "time"

type TaskEntity struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Status         TaskStatus `json:"status"`
	Priority       Priority   `json:"priority"`
	AssigneeID     string     `json:"assigneeId"`
	ReporterID     string     `json:"reporterId"`
	ProjectID      *string    `json:"projectId,omitempty"`
	DueDate        string     `json:"dueDate"`
	EstimatedHours *float64   `json:"estimatedHours,omitempty"`
	ActualHours    float64    `json:"actualHours"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
	Tags           []string   `json:"tags"`
	WatcherIDs     []string   `json:"watcherIds"`
}

type TaskStatus string

const (
	TaskBacklog    TaskStatus = "BACKLOG"
	TaskTodo       TaskStatus = "TODO"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskInReview   TaskStatus = "IN_REVIEW"
	TaskBlocked    TaskStatus = "BLOCKED"
	TaskCompleted  TaskStatus = "COMPLETED"
	TaskCancelled  TaskStatus = "CANCELLED"
)

type Priority string

const (
	PriorityLowest  Priority = "LOWEST"
	PriorityLow     Priority = "LOW"
	PriorityMedium  Priority = "MEDIUM"
	PriorityHigh    Priority = "HIGH"
	PriorityHighest Priority = "HIGHEST"
)
