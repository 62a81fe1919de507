package domain

import "time"

// DefaultTaskPriority is applied when a task is created without an
// explicit priority.
const DefaultTaskPriority = "medium"

// Task represents a single unit of work tracked by the service.
// IDs are assigned by the store, strictly increasing within a process
// lifetime; CreatedAt is stamped at creation and never changes.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Priority    string    `json:"priority"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewTask creates a Task from user-supplied fields. The store assigns the
// ID and creation timestamp; this constructor only normalizes and
// validates what the caller controls.
func NewTask(title, description, priority string) (*Task, error) {
	if priority == "" {
		priority = DefaultTaskPriority
	}

	task := &Task{
		Title:       title,
		Description: description,
		Priority:    priority,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks that the Task has valid data.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrEmptyTitle
	}
	return nil
}
