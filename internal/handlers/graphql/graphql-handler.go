package graphql_handlers

import (
	"github.com/Xenn-00/projekt-tafel/internal/config"
	"github.com/Xenn-00/projekt-tafel/internal/dtos"
	graphql_dto "github.com/Xenn-00/projekt-tafel/internal/dtos/graphql-dto"
	project_dto "github.com/Xenn-00/projekt-tafel/internal/dtos/project-dto"
	task_dto "github.com/Xenn-00/projekt-tafel/internal/dtos/task-dto"
	user_dto "github.com/Xenn-00/projekt-tafel/internal/dtos/user-dto"
	app_errors "github.com/Xenn-00/projekt-tafel/internal/errors"
	"github.com/Xenn-00/projekt-tafel/internal/handlers"
	internal_i18n "github.com/Xenn-00/projekt-tafel/internal/i18n"
	"github.com/Xenn-00/projekt-tafel/internal/store"
	department_case "github.com/Xenn-00/projekt-tafel/internal/use-cases/department-case"
	project_case "github.com/Xenn-00/projekt-tafel/internal/use-cases/project-case"
	stats_case "github.com/Xenn-00/projekt-tafel/internal/use-cases/stats-case"
	task_case "github.com/Xenn-00/projekt-tafel/internal/use-cases/task-case"
	user_case "github.com/Xenn-00/projekt-tafel/internal/use-cases/user-case"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

type GraphQLHandler struct {
	validator    *validator.Validate
	i18n         *internal_i18n.I18nService
	tasks        task_case.TaskServiceContract
	users        user_case.UserServiceContract
	projects     project_case.ProjectServiceContract
	departments  department_case.DepartmentServiceContract
	stats        stats_case.StatsServiceContract
	defaultActor string
}

func NewGraphQLHandler(s *store.Store, i18n *internal_i18n.I18nService, cfg *config.AppConfig) *GraphQLHandler {
	validate := validator.New()
	validate.RegisterValidation("taskStatus", task_dto.IsValidTaskStatus)
	validate.RegisterValidation("taskPriority", task_dto.IsValidTaskPriority)
	validate.RegisterValidation("projectStatus", project_dto.IsValidProjectStatus)
	validate.RegisterValidation("isoDate", task_dto.IsValidISODate)

	return &GraphQLHandler{
		validator:    validate,
		i18n:         i18n,
		tasks:        task_case.NewTaskService(s, cfg.API.DefaultLimit),
		users:        user_case.NewUserService(s),
		projects:     project_case.NewProjectService(s),
		departments:  department_case.NewDepartmentService(s),
		stats:        stats_case.NewStatsService(s),
		defaultActor: cfg.API.DefaultActor,
	}
}

// Status beantwortet GET auf dem Operation-Endpoint mit einem Lebenszeichen.
func (h *GraphQLHandler) Status(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "OK"})
}

// Execute nimmt ein Operationsdokument entgegen, ermittelt die Operation per
// exaktem Namens-Lookup und leitet an den zuständigen Service weiter.
func (h *GraphQLHandler) Execute(c *fiber.Ctx) error {
	var req graphql_dto.GraphQLRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	op, ok := ResolveOperation(&req)
	if !ok {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrUnknownOperation, "operation.unknown", nil)
	}

	actorID := handlers.GetActorID(c, h.defaultActor)

	var result any
	var appErr *app_errors.AppError

	switch op {
	case OpTasks:
		filter, err := decodeVariables[task_dto.TaskListFilter](h, req.Variables)
		if err != nil {
			return err
		}
		result, appErr = h.tasks.QueryTasks(c.Context(), *filter)

	case OpTask:
		vars, err := decodeVariables[task_dto.GetTaskVariables](h, req.Variables)
		if err != nil {
			return err
		}
		result, appErr = h.tasks.GetTask(c.Context(), vars.ID)

	case OpProjects:
		filter, err := decodeVariables[project_dto.ProjectListFilter](h, req.Variables)
		if err != nil {
			return err
		}
		result, appErr = h.projects.ListProjects(c.Context(), *filter)

	case OpProject:
		vars, err := decodeVariables[project_dto.GetProjectVariables](h, req.Variables)
		if err != nil {
			return err
		}
		result, appErr = h.projects.GetProject(c.Context(), vars.ID)

	case OpUsers:
		filter, err := decodeVariables[user_dto.UserListFilter](h, req.Variables)
		if err != nil {
			return err
		}
		result, appErr = h.users.ListUsers(c.Context(), *filter)

	case OpUser:
		vars, err := decodeVariables[user_dto.GetUserVariables](h, req.Variables)
		if err != nil {
			return err
		}
		result, appErr = h.users.GetUser(c.Context(), vars.ID)

	case OpDepartments:
		result, appErr = h.departments.ListDepartments(c.Context())

	case OpDepartment:
		vars, err := decodeVariables[struct {
			ID string `json:"id" validate:"required"`
		}](h, req.Variables)
		if err != nil {
			return err
		}
		result, appErr = h.departments.GetDepartment(c.Context(), vars.ID)

	case OpTaskStatistics:
		filter, err := decodeVariables[task_dto.StatisticsFilter](h, req.Variables)
		if err != nil {
			return err
		}
		result, appErr = h.stats.TaskStatistics(c.Context(), *filter)

	case OpCreateTask:
		vars, err := decodeVariables[task_dto.CreateTaskVariables](h, req.Variables)
		if err != nil {
			return err
		}
		result, appErr = h.tasks.CreateTask(c.Context(), actorID, &vars.Input)

	case OpUpdateTask:
		vars, err := decodeVariables[task_dto.UpdateTaskVariables](h, req.Variables)
		if err != nil {
			return err
		}
		result, appErr = h.tasks.UpdateTask(c.Context(), actorID, vars.ID, &vars.Input)

	case OpDeleteTask:
		vars, err := decodeVariables[task_dto.DeleteTaskVariables](h, req.Variables)
		if err != nil {
			return err
		}
		result, appErr = h.tasks.DeleteTask(c.Context(), actorID, vars.ID)

	case OpCreateComment:
		vars, err := decodeVariables[task_dto.CreateCommentVariables](h, req.Variables)
		if err != nil {
			return err
		}
		result, appErr = h.tasks.CreateComment(c.Context(), actorID, &vars.Input)

	case OpLogTime:
		vars, err := decodeVariables[task_dto.LogTimeVariables](h, req.Variables)
		if err != nil {
			return err
		}
		result, appErr = h.tasks.LogTime(c.Context(), actorID, &vars.Input)
	}

	if appErr != nil {
		return appErr
	}

	if err := c.Status(fiber.StatusOK).JSON(dtos.NewDataResponse(op.Field(), result)); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return nil
}

// decodeVariables überführt das Variables-Objekt in den typisierten Request
// und validiert ihn. Ein leeres Variables-Objekt ergibt den Nullwert.
func decodeVariables[T any](h *GraphQLHandler, vars map[string]any) (*T, *app_errors.AppError) {
	var out T

	if vars != nil {
		raw, err := json.Marshal(vars)
		if err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
		}
	}

	if err := h.validator.Struct(&out); err != nil {
		return nil, app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	return &out, nil
}
