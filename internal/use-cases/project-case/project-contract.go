package project_case

import (
	"context"

	project_dto "github.com/Xenn-00/projekt-tafel/internal/dtos/project-dto"
	app_errors "github.com/Xenn-00/projekt-tafel/internal/errors"
)

type ProjectServiceContract interface {
	ListProjects(ctx context.Context, filter project_dto.ProjectListFilter) ([]project_dto.ProjectResponse, *app_errors.AppError)
	GetProject(ctx context.Context, projectID string) (*project_dto.ProjectResponse, *app_errors.AppError)
}
