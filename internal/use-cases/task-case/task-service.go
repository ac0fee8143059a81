package task_case

import (
	"context"
	"time"

	task_dto "github.com/Xenn-00/projekt-tafel/internal/dtos/task-dto"
	"github.com/Xenn-00/projekt-tafel/internal/entity"
	app_errors "github.com/Xenn-00/projekt-tafel/internal/errors"
	"github.com/Xenn-00/projekt-tafel/internal/resolver"
	"github.com/Xenn-00/projekt-tafel/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type TaskService struct {
	store        *store.Store
	resolver     *resolver.Resolver
	defaultLimit int
}

func NewTaskService(s *store.Store, defaultLimit int) TaskServiceContract {
	if defaultLimit <= 0 {
		defaultLimit = 50
	}
	return &TaskService{
		store:        s,
		resolver:     resolver.NewResolver(s),
		defaultLimit: defaultLimit,
	}
}

func (s *TaskService) QueryTasks(ctx context.Context, filter task_dto.TaskListFilter) (*task_dto.TaskConnection, *app_errors.AppError) {
	s.store.Lock()
	defer s.store.Unlock()

	// Filter in Einfügereihenfolge anwenden; alle Prädikate sind UND-verknüpft
	// und unabhängig, Pagination kommt erst nach dem Filtern.
	var filtered []*entity.TaskEntity
	for _, t := range s.store.Tasks.GetAll() {
		if matchesTaskFilter(t, &filter) {
			filtered = append(filtered, t)
		}
	}

	limit := filter.Limit
	if limit == 0 {
		limit = s.defaultLimit
	}
	offset := filter.Offset

	page := paginate(filtered, offset, limit)
	tasks := make([]task_dto.TaskResponse, 0, len(page))
	for _, t := range page {
		tasks = append(tasks, s.resolver.ResolveTask(t))
	}

	return &task_dto.TaskConnection{
		Tasks:      tasks,
		TotalCount: len(filtered),
		HasMore:    offset+limit < len(filtered),
	}, nil
}

func (s *TaskService) GetTask(ctx context.Context, taskID string) (*task_dto.TaskResponse, *app_errors.AppError) {
	s.store.Lock()
	defer s.store.Unlock()

	// Find-or-null: eine unbekannte Id ist kein Fehler, das Ergebnis ist null.
	task, ok := s.store.Tasks.GetByID(taskID)
	if !ok {
		return nil, nil
	}

	resp := s.resolver.ResolveTask(task)
	return &resp, nil
}

func (s *TaskService) CreateTask(ctx context.Context, actorID string, req *task_dto.CreateTaskRequest) (*task_dto.TaskResponse, *app_errors.AppError) {
	s.store.Lock()
	defer s.store.Unlock()

	taskID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}

	now := time.Now()
	task := &entity.TaskEntity{
		ID:             taskID.String(),
		Title:          req.Title,
		Description:    req.Description,
		Status:         entity.TaskStatus(req.Status),
		Priority:       entity.Priority(req.Priority),
		AssigneeID:     req.AssigneeID,
		ReporterID:     req.ReporterID,
		ProjectID:      req.ProjectID,
		DueDate:        req.DueDate,
		EstimatedHours: req.EstimatedHours,
		ActualHours:    0,
		CreatedAt:      now,
		UpdatedAt:      &now,
		Tags:           emptyIfNil(req.Tags),
		WatcherIDs:     emptyIfNil(req.WatcherIDs),
	}
	s.store.Tasks.Append(task)

	// Zähler des Assignees fortschreiben; ein hängender Verweis bleibt ein No-op.
	if idx := s.store.Users.FindIndex(func(u *entity.UserEntity) bool { return u.ID == req.AssigneeID }); idx >= 0 {
		assignee, _ := s.store.Users.GetByID(req.AssigneeID)
		updated := *assignee
		updated.TasksAssigned++
		s.store.Users.ReplaceAt(idx, &updated)
	}

	log.Info().Str("actor_id", actorID).Str("task_id", task.ID).Msgf("created task: %s", task.Title)

	resp := s.resolver.ResolveTask(task)
	return &resp, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, actorID, taskID string, req *task_dto.UpdateTaskRequest) (*task_dto.TaskResponse, *app_errors.AppError) {
	s.store.Lock()
	defer s.store.Unlock()

	idx := s.store.Tasks.FindIndex(func(t *entity.TaskEntity) bool { return t.ID == taskID })
	if idx < 0 {
		return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "task.not_found", nil)
	}

	current, _ := s.store.Tasks.GetByID(taskID)

	// Shallow-Merge: nur gesetzte Felder überschreiben, der Rest bleibt.
	updated := *current
	mergeTaskUpdate(&updated, req)

	now := time.Now()
	updated.UpdatedAt = &now

	// Abschlusszeitpunkt bei Statusübergängen fortschreiben, er speist die
	// zeitbasierten Statistiken.
	if req.Status != nil {
		switch {
		case updated.Status == entity.TaskCompleted && current.Status != entity.TaskCompleted:
			updated.CompletedAt = &now
		case updated.Status != entity.TaskCompleted && current.Status == entity.TaskCompleted:
			updated.CompletedAt = nil
		}
	}

	s.store.Tasks.ReplaceAt(idx, &updated)

	log.Info().Str("actor_id", actorID).Str("task_id", taskID).Msgf("updated task: %s", updated.Title)

	resp := s.resolver.ResolveTask(&updated)
	return &resp, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, actorID, taskID string) (bool, *app_errors.AppError) {
	s.store.Lock()
	defer s.store.Unlock()

	idx := s.store.Tasks.FindIndex(func(t *entity.TaskEntity) bool { return t.ID == taskID })
	if idx < 0 {
		// Löschen einer unbekannten Id ist kein Fehler, nur false.
		return false, nil
	}

	s.store.Tasks.RemoveAt(idx)
	log.Info().Str("actor_id", actorID).Str("task_id", taskID).Msg("deleted task")

	return true, nil
}

func (s *TaskService) CreateComment(ctx context.Context, actorID string, req *task_dto.CreateCommentRequest) (*task_dto.CommentResponse, *app_errors.AppError) {
	s.store.Lock()
	defer s.store.Unlock()

	commentID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}

	comment := &entity.CommentEntity{
		ID:        commentID.String(),
		Content:   req.Content,
		AuthorID:  actorID,
		TaskID:    req.TaskID,
		CreatedAt: time.Now(),
		IsEdited:  false,
	}
	s.store.Comments.Append(comment)

	log.Info().Str("actor_id", actorID).Str("task_id", req.TaskID).Msg("added comment")

	resp := s.resolver.ResolveComment(comment)
	return &resp, nil
}

func (s *TaskService) LogTime(ctx context.Context, actorID string, req *task_dto.LogTimeRequest) (*task_dto.TimeEntryResponse, *app_errors.AppError) {
	s.store.Lock()
	defer s.store.Unlock()

	// Eintrag und Stundenzähler der Aufgabe ändern sich zusammen oder gar
	// nicht; ohne Aufgabe wird auch kein Eintrag angelegt.
	idx := s.store.Tasks.FindIndex(func(t *entity.TaskEntity) bool { return t.ID == req.TaskID })
	if idx < 0 {
		return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "task.not_found", nil)
	}

	entryID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}

	entry := &entity.TimeEntryEntity{
		ID:          entryID.String(),
		UserID:      actorID,
		TaskID:      req.TaskID,
		Hours:       req.Hours,
		Description: req.Description,
		Date:        req.Date,
		Billable:    req.Billable,
	}
	s.store.TimeEntries.Append(entry)

	task, _ := s.store.Tasks.GetByID(req.TaskID)
	updated := *task
	updated.ActualHours += req.Hours
	s.store.Tasks.ReplaceAt(idx, &updated)

	log.Info().Str("actor_id", actorID).Str("task_id", req.TaskID).Msgf("logged %v hours", req.Hours)

	resp := s.resolver.ResolveTimeEntry(entry)
	return &resp, nil
}
