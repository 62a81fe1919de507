package store

import (
	"context"

	"github.com/claydesk/flowtest-api/internal/domain"
)

// TaskUpdate carries the mutable fields of a task for Update operations.
// ID, completion state, and creation timestamp are never touched by an
// update.
type TaskUpdate struct {
	Title       string
	Description string
	Priority    string
}

// TaskStore defines the interface for task data access.
type TaskStore interface {
	// Create assigns the next task ID, stamps the creation time, and saves
	// the task. The passed task is populated in place and also returned.
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// List returns all tasks in insertion order. The returned slice and
	// its elements are copies; callers never observe later mutations.
	List(ctx context.Context) ([]domain.Task, error)

	// GetByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Update replaces the task's title, description, and priority in place.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, id int64, update TaskUpdate) (*domain.Task, error)

	// Delete removes the task with the given ID. Deleting a task that does
	// not exist is not an error; the operation is idempotent.
	Delete(ctx context.Context, id int64) error

	// Complete marks the task with the given ID as completed.
	// Returns ErrTaskNotFound if the task does not exist.
	Complete(ctx context.Context, id int64) (*domain.Task, error)

	// Counts reports the total and completed task counts in one snapshot.
	Counts(ctx context.Context) (total, completed int, err error)
}
