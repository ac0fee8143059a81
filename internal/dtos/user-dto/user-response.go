package user_dto

import "github.com/Xenn-00/projekt-tafel/internal/entity"

type UserResponse struct {
	entity.UserEntity
	Department  *entity.DepartmentEntity `json:"department"`
	Projects    []*entity.ProjectEntity  `json:"projects"`
	Performance *PerformanceResponse     `json:"performance,omitempty"`
}

// PerformanceResponse fasst die Kennzahlen eines Benutzers zusammen,
// abgeleitet aus seinen abgeschlossenen Aufgaben und Zeitbuchungen.
type PerformanceResponse struct {
	TasksCompletedThisMonth int     `json:"tasksCompletedThisMonth"`
	AverageCompletionTime   float64 `json:"averageCompletionTime"`
	OnTimeDeliveryRate      float64 `json:"onTimeDeliveryRate"`
	QualityScore            float64 `json:"qualityScore"`
}
