package store

import (
	"testing"

	"github.com/Xenn-00/projekt-tafel/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestCollection_InsertionOrder(t *testing.T) {
	c := NewCollection(
		&entity.TaskEntity{ID: "b"},
		&entity.TaskEntity{ID: "a"},
	)
	c.Append(&entity.TaskEntity{ID: "c"})

	all := c.GetAll()
	assert.Len(t, all, 3)
	assert.Equal(t, "b", all[0].ID)
	assert.Equal(t, "a", all[1].ID)
	assert.Equal(t, "c", all[2].ID)
}

func TestCollection_GetByID(t *testing.T) {
	c := NewCollection(&entity.TaskEntity{ID: "1", Title: "one"})

	got, ok := c.GetByID("1")
	assert.True(t, ok)
	assert.Equal(t, "one", got.Title)

	got, ok = c.GetByID("999")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestCollection_ReplaceAt(t *testing.T) {
	c := NewCollection(&entity.TaskEntity{ID: "1", Title: "old"})

	idx := c.FindIndex(func(e *entity.TaskEntity) bool { return e.ID == "1" })
	assert.Equal(t, 0, idx)

	c.ReplaceAt(idx, &entity.TaskEntity{ID: "1", Title: "new"})

	got, _ := c.GetByID("1")
	assert.Equal(t, "new", got.Title)
	assert.Equal(t, 1, c.Len())
}

func TestCollection_RemoveAt(t *testing.T) {
	c := NewCollection(
		&entity.TaskEntity{ID: "1"},
		&entity.TaskEntity{ID: "2"},
		&entity.TaskEntity{ID: "3"},
	)

	c.RemoveAt(1)

	assert.Equal(t, 2, c.Len())
	_, ok := c.GetByID("2")
	assert.False(t, ok)
	// die Reihenfolge der verbleibenden Datensätze bleibt erhalten
	all := c.GetAll()
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "3", all[1].ID)
}

func TestCollection_GetAllReturnsCopy(t *testing.T) {
	c := NewCollection(&entity.TaskEntity{ID: "1"})

	all := c.GetAll()
	all[0] = &entity.TaskEntity{ID: "mutated"}

	got, ok := c.GetByID("1")
	assert.True(t, ok)
	assert.Equal(t, "1", got.ID)
}

func TestStore_ResetRestoresFixtures(t *testing.T) {
	s := NewStore()

	s.Lock()
	s.Tasks.Append(&entity.TaskEntity{ID: "extra"})
	idx := s.Users.FindIndex(func(u *entity.UserEntity) bool { return u.ID == "1" })
	mutated := *mustUser(t, s, "1")
	mutated.TasksAssigned = 99
	s.Users.ReplaceAt(idx, &mutated)
	s.Unlock()

	s.Reset()

	assert.True(t, s.Seeded())
	assert.Equal(t, 2, s.Tasks.Len())
	assert.Equal(t, 4, s.Users.Len())
	assert.Equal(t, 0, mustUser(t, s, "1").TasksAssigned)
}

func mustUser(t *testing.T, s *Store, id string) *entity.UserEntity {
	t.Helper()
	u, ok := s.Users.GetByID(id)
	assert.True(t, ok)
	return u
}
