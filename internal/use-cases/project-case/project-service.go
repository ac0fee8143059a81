package project_case

import (
	"context"

	project_dto "github.com/Xenn-00/projekt-tafel/internal/dtos/project-dto"
	"github.com/Xenn-00/projekt-tafel/internal/entity"
	app_errors "github.com/Xenn-00/projekt-tafel/internal/errors"
	"github.com/Xenn-00/projekt-tafel/internal/resolver"
	"github.com/Xenn-00/projekt-tafel/internal/store"
)

type ProjectService struct {
	store    *store.Store
	resolver *resolver.Resolver
}

func NewProjectService(s *store.Store) ProjectServiceContract {
	return &ProjectService{
		store:    s,
		resolver: resolver.NewResolver(s),
	}
}

func (s *ProjectService) ListProjects(ctx context.Context, filter project_dto.ProjectListFilter) ([]project_dto.ProjectResponse, *app_errors.AppError) {
	s.store.Lock()
	defer s.store.Unlock()

	projects := make([]project_dto.ProjectResponse, 0)
	for _, p := range s.store.Projects.GetAll() {
		if filter.Status != nil && p.Status != entity.ProjectStatus(*filter.Status) {
			continue
		}
		if filter.DepartmentID != nil && (p.DepartmentID == nil || *p.DepartmentID != *filter.DepartmentID) {
			continue
		}
		projects = append(projects, s.resolver.ResolveProject(p))
	}

	return projects, nil
}

func (s *ProjectService) GetProject(ctx context.Context, projectID string) (*project_dto.ProjectResponse, *app_errors.AppError) {
	s.store.Lock()
	defer s.store.Unlock()

	project, ok := s.store.Projects.GetByID(projectID)
	if !ok {
		return nil, nil
	}

	resp := s.resolver.ResolveProject(project)
	return &resp, nil
}
