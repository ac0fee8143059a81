package project_dto

import "github.com/Xenn-00/projekt-tafel/internal/entity"

type ProjectResponse struct {
	entity.ProjectEntity
	Owner      *entity.UserEntity       `json:"owner"`
	Department *entity.DepartmentEntity `json:"department"`
	Team       []*entity.UserEntity     `json:"team"`
	Tasks      []*entity.TaskEntity     `json:"tasks"`
}
