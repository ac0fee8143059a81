package store

import (
	"sync"

	"github.com/Xenn-00/projekt-tafel/internal/entity"
	"github.com/rs/zerolog/log"
)

// Store ist der prozessweite In-Memory-Datenbestand. Er besitzt alle sechs
// Collections und wird per Dependency Injection an die Services gereicht.
// Es gibt genau eine Sperre: jede Read-Modify-Write-Sequenz eines Service
// läuft komplett unter Lock/Unlock, damit niemals ein halb geschriebener
// Datensatz sichtbar wird.
type Store struct {
	mu sync.Mutex

	Users       *Collection[*entity.UserEntity]
	Departments *Collection[*entity.DepartmentEntity]
	Projects    *Collection[*entity.ProjectEntity]
	Tasks       *Collection[*entity.TaskEntity]
	Comments    *Collection[*entity.CommentEntity]
	TimeEntries *Collection[*entity.TimeEntryEntity]

	seeded bool
}

// NewStore erstellt einen Store und lädt die Fixture-Daten.
func NewStore() *Store {
	s := &Store{}
	s.Reset()
	return s
}

// Lock serialisiert den Zugriff; jede Operation der Services hält die Sperre
// von der ersten Leseaktion bis zur letzten Schreibaktion.
func (s *Store) Lock() {
	s.mu.Lock()
}

func (s *Store) Unlock() {
	s.mu.Unlock()
}

// Reset verwirft den gesamten Zustand und lädt die Fixtures neu.
// Tests nutzen das als Rücksetzpunkt zwischen den Fällen.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Users = NewCollection(fixtureUsers()...)
	s.Departments = NewCollection(fixtureDepartments()...)
	s.Projects = NewCollection(fixtureProjects()...)
	s.Tasks = NewCollection(fixtureTasks()...)
	s.Comments = NewCollection(fixtureComments()...)
	s.TimeEntries = NewCollection(fixtureTimeEntries()...)
	s.seeded = true

	log.Debug().
		Int("users", s.Users.Len()).
		Int("tasks", s.Tasks.Len()).
		Msg("store fixtures loaded")
}

// Seeded meldet, ob die Fixtures geladen sind (Readiness-Check).
func (s *Store) Seeded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seeded
}
