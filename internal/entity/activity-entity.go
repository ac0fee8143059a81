package entity

import "time"

type CommentEntity struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"authorId"`
	TaskID    string    `json:"taskId"`
	CreatedAt time.Time `json:"createdAt"`
	IsEdited  bool      `json:"isEdited"`
}

type TimeEntryEntity struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	TaskID      string  `json:"taskId"`
	Hours       float64 `json:"hours"`
	Description *string `json:"description,omitempty"`
	Date        string  `json:"date"`
	Billable    bool    `json:"billable"`
}
