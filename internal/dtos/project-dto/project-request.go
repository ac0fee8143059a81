package project_dto

import (
	"github.com/Xenn-00/projekt-tafel/internal/entity"
	"github.com/go-playground/validator/v10"
)

type ProjectListFilter struct {
	Status       *string `json:"status,omitempty" validate:"omitempty,projectStatus"`
	DepartmentID *string `json:"departmentId,omitempty"`
}

type GetProjectVariables struct {
	ID string `json:"id" validate:"required"`
}

func IsValidProjectStatus(fl validator.FieldLevel) bool {
	switch entity.ProjectStatus(fl.Field().String()) {
	case entity.ProjectPlanning, entity.ProjectActive, entity.ProjectOnHold,
		entity.ProjectCompleted, entity.ProjectCancelled:
		return true
	default:
		return false
	}
}
