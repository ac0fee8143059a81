package entity

func (u *UserEntity) RecordID() string       { return u.ID }
func (d *DepartmentEntity) RecordID() string { return d.ID }
func (p *ProjectEntity) RecordID() string    { return p.ID }
func (t *TaskEntity) RecordID() string       { return t.ID }
func (c *CommentEntity) RecordID() string    { return c.ID }
func (e *TimeEntryEntity) RecordID() string  { return e.ID }
