package user_dto

type UserListFilter struct {
	DepartmentID *string `json:"departmentId,omitempty"`
	Role         *string `json:"role,omitempty"`
	IsActive     *bool   `json:"isActive,omitempty"`
}

type GetUserVariables struct {
	ID string `json:"id" validate:"required"`
}
