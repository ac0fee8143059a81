package task_case

import (
	"strings"

	task_dto "github.com/Xenn-00/projekt-tafel/internal/dtos/task-dto"
	"github.com/Xenn-00/projekt-tafel/internal/entity"
)

func matchesTaskFilter(t *entity.TaskEntity, filter *task_dto.TaskListFilter) bool {
	if filter.Status != nil && t.Status != entity.TaskStatus(*filter.Status) {
		return false
	}
	if filter.Priority != nil && t.Priority != entity.Priority(*filter.Priority) {
		return false
	}
	if filter.AssigneeID != nil && t.AssigneeID != *filter.AssigneeID {
		return false
	}
	if filter.ProjectID != nil && (t.ProjectID == nil || *t.ProjectID != *filter.ProjectID) {
		return false
	}
	if filter.Search != nil && *filter.Search != "" {
		q := strings.ToLower(*filter.Search)
		if !strings.Contains(strings.ToLower(t.Title), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) {
			return false
		}
	}
	return true
}

func paginate(tasks []*entity.TaskEntity, offset, limit int) []*entity.TaskEntity {
	if offset >= len(tasks) {
		return nil
	}
	end := offset + limit
	if end > len(tasks) {
		end = len(tasks)
	}
	return tasks[offset:end]
}

func mergeTaskUpdate(task *entity.TaskEntity, req *task_dto.UpdateTaskRequest) {
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = entity.TaskStatus(*req.Status)
	}
	if req.Priority != nil {
		task.Priority = entity.Priority(*req.Priority)
	}
	if req.AssigneeID != nil {
		task.AssigneeID = *req.AssigneeID
	}
	if req.ProjectID != nil {
		task.ProjectID = req.ProjectID
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
	if req.EstimatedHours != nil {
		task.EstimatedHours = req.EstimatedHours
	}
	if req.ActualHours != nil {
		task.ActualHours = *req.ActualHours
	}
	if req.Tags != nil {
		task.Tags = req.Tags
	}
}

func emptyIfNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
