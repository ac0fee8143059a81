package store

import (
	"time"

	"github.com/Xenn-00/projekt-tafel/internal/entity"
)

// Fixture-Datensatz des Dashboards: vier Benutzer, zwei Abteilungen, zwei
// Projekte, zwei Aufgaben samt Kommentaren und Zeitbuchungen.

func ptr[T any](v T) *T { return &v }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func fixtureUsers() []*entity.UserEntity {
	return []*entity.UserEntity{
		{
			ID: "1", Name: "Sarah Chen", Email: "sarah@company.com",
			Avatar: ptr("👩‍💻"), Role: "Senior Developer", DepartmentID: ptr("1"),
			TasksAssigned: 0, TasksCompleted: 45,
			Skills:   []string{"React", "GraphQL", "Node.js"},
			IsActive: true, CreatedAt: ptr("2024-01-15"), LastLogin: ptr("2025-11-27"),
		},
		{
			ID: "2", Name: "Mike Johnson", Email: "mike@company.com",
			Avatar: ptr("👨‍💼"), Role: "Tech Lead", DepartmentID: ptr("1"),
			TasksAssigned: 0, TasksCompleted: 67,
			Skills:   []string{"Node.js", "AWS", "Docker"},
			IsActive: true, CreatedAt: ptr("2023-11-10"), LastLogin: ptr("2025-11-27"),
		},
		{
			ID: "3", Name: "Emma Davis", Email: "emma@company.com",
			Avatar: ptr("👩‍🔬"), Role: "QA Engineer", DepartmentID: ptr("2"),
			TasksAssigned: 0, TasksCompleted: 89,
			Skills:   []string{"Jest", "Cypress", "Testing"},
			IsActive: true, CreatedAt: ptr("2024-03-20"), LastLogin: ptr("2025-11-26"),
		},
		{
			ID: "4", Name: "Alex Wong", Email: "alex@company.com",
			Avatar: ptr("🔒"), Role: "Security Specialist", DepartmentID: ptr("1"),
			TasksAssigned: 0, TasksCompleted: 34,
			Skills:   []string{"Security", "Compliance"},
			IsActive: true, CreatedAt: ptr("2024-06-01"), LastLogin: ptr("2025-11-27"),
		},
	}
}

func fixtureDepartments() []*entity.DepartmentEntity {
	return []*entity.DepartmentEntity{
		{ID: "1", Name: "Engineering", Description: ptr("Product development"), ManagerID: ptr("2"), Budget: ptr(500000.0)},
		{ID: "2", Name: "Quality Assurance", Description: ptr("Testing and QA"), ManagerID: ptr("3"), Budget: ptr(200000.0)},
	}
}

func fixtureProjects() []*entity.ProjectEntity {
	return []*entity.ProjectEntity{
		{
			ID: "1", Name: "E-Commerce Platform", Description: "Complete platform redesign",
			Status: entity.ProjectActive, Priority: entity.PriorityHighest,
			StartDate: "2025-10-01", EndDate: ptr("2026-03-31"),
			Budget: ptr(150000.0), ActualCost: 45000, Progress: 35,
			OwnerID: "2", DepartmentID: ptr("1"),
			TeamIDs: []string{"1", "2", "3"}, Tags: []string{"frontend", "backend"},
		},
		{
			ID: "2", Name: "Mobile App", Description: "iOS and Android apps",
			Status: entity.ProjectPlanning, Priority: entity.PriorityHigh,
			StartDate: "2026-01-01", EndDate: ptr("2026-08-31"),
			Budget: ptr(200000.0), ActualCost: 0, Progress: 10,
			OwnerID: "1", DepartmentID: ptr("1"),
			TeamIDs: []string{"1", "2"}, Tags: []string{"mobile"},
		},
	}
}

func fixtureTasks() []*entity.TaskEntity {
	return []*entity.TaskEntity{
		{
			ID: "1", Title: "Design new landing page", Description: "Create modern, responsive landing page",
			Status: entity.TaskInProgress, Priority: entity.PriorityHigh,
			AssigneeID: "1", ReporterID: "2", ProjectID: ptr("1"),
			DueDate: "2025-12-05", EstimatedHours: ptr(16.0), ActualHours: 8,
			CreatedAt: date(2025, time.November, 20), UpdatedAt: ptr(date(2025, time.November, 27)),
			Tags: []string{"design", "frontend"}, WatcherIDs: []string{"2", "3"},
		},
		{
			ID: "2", Title: "Implement GraphQL API", Description: "Set up Apollo Server with schema",
			Status: entity.TaskCompleted, Priority: entity.PriorityHighest,
			AssigneeID: "2", ReporterID: "2", ProjectID: ptr("1"),
			DueDate: "2025-11-28", EstimatedHours: ptr(20.0), ActualHours: 18,
			CreatedAt: date(2025, time.November, 15), UpdatedAt: ptr(date(2025, time.November, 26)),
			CompletedAt: ptr(date(2025, time.November, 26)),
			Tags:        []string{"backend", "api"}, WatcherIDs: []string{"1"},
		},
	}
}

func fixtureComments() []*entity.CommentEntity {
	return []*entity.CommentEntity{
		{ID: "1", Content: "Looking good!", AuthorID: "2", TaskID: "1", CreatedAt: date(2025, time.November, 21), IsEdited: false},
		{ID: "2", Content: "Great work!", AuthorID: "1", TaskID: "2", CreatedAt: date(2025, time.November, 26), IsEdited: false},
	}
}

func fixtureTimeEntries() []*entity.TimeEntryEntity {
	return []*entity.TimeEntryEntity{
		{ID: "1", UserID: "1", TaskID: "1", Hours: 4, Description: ptr("Initial design"), Date: "2025-11-25", Billable: true},
		{ID: "2", UserID: "1", TaskID: "1", Hours: 4, Description: ptr("Responsive layout"), Date: "2025-11-26", Billable: true},
	}
}
