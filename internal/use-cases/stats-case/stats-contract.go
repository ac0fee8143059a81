package stats_case

import (
	"context"

	task_dto "github.com/Xenn-00/projekt-tafel/internal/dtos/task-dto"
	app_errors "github.com/Xenn-00/projekt-tafel/internal/errors"
)

type StatsServiceContract interface {
	TaskStatistics(ctx context.Context, filter task_dto.StatisticsFilter) (*task_dto.TaskStatistics, *app_errors.AppError)
}
