package entity

type ProjectEntity struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Status       ProjectStatus `json:"status"`
	Priority     Priority      `json:"priority"`
	StartDate    string        `json:"startDate"`
	EndDate      *string       `json:"endDate,omitempty"`
	Budget       *float64      `json:"budget,omitempty"`
	ActualCost   float64       `json:"actualCost"`
	Progress     float64       `json:"progress"`
	OwnerID      string        `json:"ownerId"`
	DepartmentID *string       `json:"departmentId,omitempty"`
	TeamIDs      []string      `json:"teamIds"`
	Tags         []string      `json:"tags"`
}

type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "PLANNING"
	ProjectActive    ProjectStatus = "ACTIVE"
	ProjectOnHold    ProjectStatus = "ON_HOLD"
	ProjectCompleted ProjectStatus = "COMPLETED"
	ProjectCancelled ProjectStatus = "CANCELLED"
)
