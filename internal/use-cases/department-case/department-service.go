package department_case

import (
	"context"

	department_dto "github.com/Xenn-00/projekt-tafel/internal/dtos/department-dto"
	app_errors "github.com/Xenn-00/projekt-tafel/internal/errors"
	"github.com/Xenn-00/projekt-tafel/internal/resolver"
	"github.com/Xenn-00/projekt-tafel/internal/store"
)

type DepartmentService struct {
	store    *store.Store
	resolver *resolver.Resolver
}

func NewDepartmentService(s *store.Store) DepartmentServiceContract {
	return &DepartmentService{
		store:    s,
		resolver: resolver.NewResolver(s),
	}
}

func (s *DepartmentService) ListDepartments(ctx context.Context) ([]department_dto.DepartmentResponse, *app_errors.AppError) {
	s.store.Lock()
	defer s.store.Unlock()

	departments := make([]department_dto.DepartmentResponse, 0)
	for _, d := range s.store.Departments.GetAll() {
		departments = append(departments, s.resolver.ResolveDepartment(d))
	}

	return departments, nil
}

func (s *DepartmentService) GetDepartment(ctx context.Context, departmentID string) (*department_dto.DepartmentResponse, *app_errors.AppError) {
	s.store.Lock()
	defer s.store.Unlock()

	department, ok := s.store.Departments.GetByID(departmentID)
	if !ok {
		return nil, nil
	}

	resp := s.resolver.ResolveDepartment(department)
	return &resp, nil
}
