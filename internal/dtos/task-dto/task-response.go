package task_dto

import "github.com/Xenn-00/projekt-tafel/internal/entity"

// TaskResponse ist die aufgelöste Aufgabe: Fremdschlüssel bleiben im
// eingebetteten Entity erhalten, die referenzierten Datensätze kommen als
// eingebettete Objekte dazu. Nicht auflösbare Einzelreferenzen sind null.
type TaskResponse struct {
	entity.TaskEntity
	Assignee    *entity.UserEntity    `json:"assignee"`
	Reporter    *entity.UserEntity    `json:"reporter"`
	Project     *entity.ProjectEntity `json:"project"`
	Comments    []CommentResponse     `json:"comments"`
	TimeEntries []TimeEntryResponse   `json:"timeEntries"`
	Watchers    []*entity.UserEntity  `json:"watchers"`
}

type CommentResponse struct {
	entity.CommentEntity
	Author *entity.UserEntity `json:"author"`
}

type TimeEntryResponse struct {
	entity.TimeEntryEntity
	User *entity.UserEntity `json:"user"`
}

type TaskConnection struct {
	Tasks      []TaskResponse `json:"tasks"`
	TotalCount int            `json:"totalCount"`
	HasMore    bool           `json:"hasMore"`
}

type TaskStatistics struct {
	Total                 int     `json:"total"`
	Backlog               int     `json:"backlog"`
	Todo                  int     `json:"todo"`
	InProgress            int     `json:"inProgress"`
	InReview              int     `json:"inReview"`
	Blocked               int     `json:"blocked"`
	Completed             int     `json:"completed"`
	Cancelled             int     `json:"cancelled"`
	HighPriority          int     `json:"highPriority"`
	Overdue               int     `json:"overdue"`
	CompletedThisWeek     int     `json:"completedThisWeek"`
	CompletedThisMonth    int     `json:"completedThisMonth"`
	AverageCompletionTime float64 `json:"averageCompletionTime"`
}
