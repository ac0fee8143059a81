package department_case

import (
	"context"

	department_dto "github.com/Xenn-00/projekt-tafel/internal/dtos/department-dto"
	app_errors "github.com/Xenn-00/projekt-tafel/internal/errors"
)

type DepartmentServiceContract interface {
	ListDepartments(ctx context.Context) ([]department_dto.DepartmentResponse, *app_errors.AppError)
	GetDepartment(ctx context.Context, departmentID string) (*department_dto.DepartmentResponse, *app_errors.AppError)
}
