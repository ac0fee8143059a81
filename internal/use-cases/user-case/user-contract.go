package user_case

import (
	"context"

	user_dto "github.com/Xenn-00/projekt-tafel/internal/dtos/user-dto"
	app_errors "github.com/Xenn-00/projekt-tafel/internal/errors"
)

type UserServiceContract interface {
	ListUsers(ctx context.Context, filter user_dto.UserListFilter) ([]user_dto.UserResponse, *app_errors.AppError)
	GetUser(ctx context.Context, userID string) (*user_dto.UserResponse, *app_errors.AppError)
}
