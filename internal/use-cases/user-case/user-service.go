package user_case

import (
	"context"
	"time"

	user_dto "github.com/Xenn-00/projekt-tafel/internal/dtos/user-dto"
	"github.com/Xenn-00/projekt-tafel/internal/entity"
	app_errors "github.com/Xenn-00/projekt-tafel/internal/errors"
	"github.com/Xenn-00/projekt-tafel/internal/resolver"
	"github.com/Xenn-00/projekt-tafel/internal/store"
)

type UserService struct {
	store    *store.Store
	resolver *resolver.Resolver
	now      func() time.Time
}

func NewUserService(s *store.Store) UserServiceContract {
	return &UserService{
		store:    s,
		resolver: resolver.NewResolver(s),
		now:      time.Now,
	}
}

func (s *UserService) ListUsers(ctx context.Context, filter user_dto.UserListFilter) ([]user_dto.UserResponse, *app_errors.AppError) {
	s.store.Lock()
	defer s.store.Unlock()

	// Alle Filter sind optional und UND-verknüpft, wie bei den Aufgaben.
	users := make([]user_dto.UserResponse, 0)
	for _, u := range s.store.Users.GetAll() {
		if filter.DepartmentID != nil && (u.DepartmentID == nil || *u.DepartmentID != *filter.DepartmentID) {
			continue
		}
		if filter.Role != nil && u.Role != *filter.Role {
			continue
		}
		if filter.IsActive != nil && u.IsActive != *filter.IsActive {
			continue
		}

		resp := s.resolver.ResolveUser(u)
		resp.Performance = s.performance(u)
		users = append(users, resp)
	}

	return users, nil
}

func (s *UserService) GetUser(ctx context.Context, userID string) (*user_dto.UserResponse, *app_errors.AppError) {
	s.store.Lock()
	defer s.store.Unlock()

	user, ok := s.store.Users.GetByID(userID)
	if !ok {
		return nil, nil
	}

	resp := s.resolver.ResolveUser(user)
	resp.Performance = s.performance(user)
	return &resp, nil
}

// performance leitet die Kennzahlen aus den abgeschlossenen Aufgaben des
// Benutzers ab.
func (s *UserService) performance(u *entity.UserEntity) *user_dto.PerformanceResponse {
	now := s.now()

	var completedThisMonth, completed, onTime int
	var totalHours float64
	for _, t := range s.store.Tasks.GetAll() {
		if t.AssigneeID != u.ID || t.CompletedAt == nil {
			continue
		}

		completed++
		totalHours += t.CompletedAt.Sub(t.CreatedAt).Hours()

		if t.CompletedAt.Year() == now.Year() && t.CompletedAt.Month() == now.Month() {
			completedThisMonth++
		}
		if due, err := time.Parse("2006-01-02", t.DueDate); err == nil {
			if !t.CompletedAt.After(due.AddDate(0, 0, 1)) {
				onTime++
			}
		}
	}

	perf := &user_dto.PerformanceResponse{
		TasksCompletedThisMonth: completedThisMonth,
		// TODO: qualityScore aus Review-Daten ableiten, sobald es welche gibt.
		QualityScore: 4.2,
	}
	if completed > 0 {
		perf.AverageCompletionTime = totalHours / float64(completed)
		perf.OnTimeDeliveryRate = float64(onTime) / float64(completed) * 100
	}

	return perf
}
