package department_dto

import "github.com/Xenn-00/projekt-tafel/internal/entity"

type DepartmentResponse struct {
	entity.DepartmentEntity
	Manager  *entity.UserEntity      `json:"manager"`
	Members  []*entity.UserEntity    `json:"members"`
	Projects []*entity.ProjectEntity `json:"projects"`
}

type GetDepartmentVariables struct {
	ID string `json:"id" validate:"required"`
}
