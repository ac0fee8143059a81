package store

// Record ist der gemeinsame Vertrag aller Entitäten, die in einer Collection leben.
type Record interface {
	RecordID() string
}

// Collection hält Datensätze in Einfügereihenfolge. Konsumenten verlassen sich
// auf diese Reihenfolge als Default-Sortierung.
type Collection[T Record] struct {
	records []T
}

func NewCollection[T Record](records ...T) *Collection[T] {
	c := &Collection[T]{}
	c.records = append(c.records, records...)
	return c
}

// GetAll liefert eine Kopie des Slices; die Datensätze selbst bleiben geteilt,
// Mutation läuft ausschließlich über ReplaceAt.
func (c *Collection[T]) GetAll() []T {
	out := make([]T, len(c.records))
	copy(out, c.records)
	return out
}

func (c *Collection[T]) GetByID(id string) (T, bool) {
	for _, r := range c.records {
		if r.RecordID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) Append(record T) {
	c.records = append(c.records, record)
}

func (c *Collection[T]) FindIndex(predicate func(T) bool) int {
	for i, r := range c.records {
		if predicate(r) {
			return i
		}
	}
	return -1
}

func (c *Collection[T]) ReplaceAt(index int, record T) {
	c.records[index] = record
}

func (c *Collection[T]) RemoveAt(index int) {
	c.records = append(c.records[:index], c.records[index+1:]...)
}

func (c *Collection[T]) Len() int {
	return len(c.records)
}
