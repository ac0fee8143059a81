package entity

type UserEntity struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Avatar         *string  `json:"avatar,omitempty"`
	Role           string   `json:"role"`
	DepartmentID   *string  `json:"departmentId,omitempty"`
	TasksAssigned  int      `json:"tasksAssigned"`
	TasksCompleted int      `json:"tasksCompleted"`
	Skills         []string `json:"skills"`
	IsActive       bool     `json:"isActive"`
	CreatedAt      *string  `json:"createdAt,omitempty"`
	LastLogin      *string  `json:"lastLogin,omitempty"`
}

type DepartmentEntity struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Budget      *float64 `json:"budget,omitempty"`
	ManagerID   *string  `json:"managerId,omitempty"`
}
