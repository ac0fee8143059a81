package resolver

import (
	department_dto "github.com/Xenn-00/projekt-tafel/internal/dtos/department-dto"
	project_dto "github.com/Xenn-00/projekt-tafel/internal/dtos/project-dto"
	task_dto "github.com/Xenn-00/projekt-tafel/internal/dtos/task-dto"
	user_dto "github.com/Xenn-00/projekt-tafel/internal/dtos/user-dto"
	"github.com/Xenn-00/projekt-tafel/internal/entity"
	"github.com/Xenn-00/projekt-tafel/internal/store"
)

// Resolver expandiert Fremdschlüssel zu eingebetteten Objekten. Die Politik
// ist durchgehend nachsichtig: eine hängende Einzelreferenz wird zu null,
// nicht auflösbare Ids in Listen fallen stillschweigend weg. Kein Resolve
// wirft jemals einen Fehler.
//
// Der Aufrufer hält die Store-Sperre für die Dauer der Auflösung.
type Resolver struct {
	store *store.Store
}

func NewResolver(s *store.Store) *Resolver {
	return &Resolver{store: s}
}

func (r *Resolver) ResolveTask(t *entity.TaskEntity) task_dto.TaskResponse {
	resp := task_dto.TaskResponse{
		TaskEntity:  *t,
		Comments:    make([]task_dto.CommentResponse, 0),
		TimeEntries: make([]task_dto.TimeEntryResponse, 0),
		Watchers:    make([]*entity.UserEntity, 0),
	}

	if assignee, ok := r.store.Users.GetByID(t.AssigneeID); ok {
		resp.Assignee = assignee
	}
	if reporter, ok := r.store.Users.GetByID(t.ReporterID); ok {
		resp.Reporter = reporter
	}
	if t.ProjectID != nil {
		if project, ok := r.store.Projects.GetByID(*t.ProjectID); ok {
			resp.Project = project
		}
	}

	for _, c := range r.store.Comments.GetAll() {
		if c.TaskID == t.ID {
			resp.Comments = append(resp.Comments, r.ResolveComment(c))
		}
	}
	for _, te := range r.store.TimeEntries.GetAll() {
		if te.TaskID == t.ID {
			resp.TimeEntries = append(resp.TimeEntries, r.ResolveTimeEntry(te))
		}
	}
	for _, id := range t.WatcherIDs {
		if watcher, ok := r.store.Users.GetByID(id); ok {
			resp.Watchers = append(resp.Watchers, watcher)
		}
	}

	return resp
}

func (r *Resolver) ResolveComment(c *entity.CommentEntity) task_dto.CommentResponse {
	resp := task_dto.CommentResponse{CommentEntity: *c}
	if author, ok := r.store.Users.GetByID(c.AuthorID); ok {
		resp.Author = author
	}
	return resp
}

func (r *Resolver) ResolveTimeEntry(te *entity.TimeEntryEntity) task_dto.TimeEntryResponse {
	resp := task_dto.TimeEntryResponse{TimeEntryEntity: *te}
	if user, ok := r.store.Users.GetByID(te.UserID); ok {
		resp.User = user
	}
	return resp
}

func (r *Resolver) ResolveProject(p *entity.ProjectEntity) project_dto.ProjectResponse {
	resp := project_dto.ProjectResponse{
		ProjectEntity: *p,
		Team:          make([]*entity.UserEntity, 0),
		Tasks:         make([]*entity.TaskEntity, 0),
	}

	if owner, ok := r.store.Users.GetByID(p.OwnerID); ok {
		resp.Owner = owner
	}
	if p.DepartmentID != nil {
		if dept, ok := r.store.Departments.GetByID(*p.DepartmentID); ok {
			resp.Department = dept
		}
	}
	for _, id := range p.TeamIDs {
		if member, ok := r.store.Users.GetByID(id); ok {
			resp.Team = append(resp.Team, member)
		}
	}
	for _, t := range r.store.Tasks.GetAll() {
		if t.ProjectID != nil && *t.ProjectID == p.ID {
			resp.Tasks = append(resp.Tasks, t)
		}
	}

	return resp
}

func (r *Resolver) ResolveUser(u *entity.UserEntity) user_dto.UserResponse {
	resp := user_dto.UserResponse{
		UserEntity: *u,
		Projects:   make([]*entity.ProjectEntity, 0),
	}

	if u.DepartmentID != nil {
		if dept, ok := r.store.Departments.GetByID(*u.DepartmentID); ok {
			resp.Department = dept
		}
	}
	// Projekte des Benutzers: Mitglied im Team oder Owner.
	for _, p := range r.store.Projects.GetAll() {
		if p.OwnerID == u.ID || contains(p.TeamIDs, u.ID) {
			resp.Projects = append(resp.Projects, p)
		}
	}

	return resp
}

func (r *Resolver) ResolveDepartment(d *entity.DepartmentEntity) department_dto.DepartmentResponse {
	resp := department_dto.DepartmentResponse{
		DepartmentEntity: *d,
		Members:          make([]*entity.UserEntity, 0),
		Projects:         make([]*entity.ProjectEntity, 0),
	}

	if d.ManagerID != nil {
		if manager, ok := r.store.Users.GetByID(*d.ManagerID); ok {
			resp.Manager = manager
		}
	}
	for _, u := range r.store.Users.GetAll() {
		if u.DepartmentID != nil && *u.DepartmentID == d.ID {
			resp.Members = append(resp.Members, u)
		}
	}
	for _, p := range r.store.Projects.GetAll() {
		if p.DepartmentID != nil && *p.DepartmentID == d.ID {
			resp.Projects = append(resp.Projects, p)
		}
	}

	return resp
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
