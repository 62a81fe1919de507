// Package memstore provides in-memory implementations of the store
// interfaces. All state is process-local and lost on restart.
//
// Every mutation is serialized behind a per-store mutex. The collections
// are small and every operation is a short critical section, so a single
// exclusive lock is both correct and fast enough; it also makes the
// invariants trivial to uphold: no two entities ever share an ID, and the
// username uniqueness check runs in the same critical section as the
// insert.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/claydesk/flowtest-api/internal/domain"
	"github.com/claydesk/flowtest-api/internal/store"
)

// TaskStore is an in-memory store.TaskStore implementation.
type TaskStore struct {
	mu       sync.Mutex
	tasks    []domain.Task
	nextID   int64
	timeFunc func() time.Time // Injectable for testing
}

// Ensure TaskStore implements store.TaskStore
var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates an empty in-memory task store. IDs start at 1 and
// increase strictly; they are never reused, even after deletes.
func NewTaskStore() *TaskStore {
	return &TaskStore{
		nextID:   1,
		timeFunc: func() time.Time { return time.Now().UTC() },
	}
}

// Create assigns the next ID, stamps the creation time, and appends the task.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if err := task.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task.ID = s.nextID
	task.CreatedAt = s.timeFunc()
	s.nextID++

	s.tasks = append(s.tasks, *task)
	return task, nil
}

// List returns a snapshot copy of all tasks in insertion order.
func (s *TaskStore) List(ctx context.Context) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

// GetByID returns a copy of the task with the given ID.
func (s *TaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			task := s.tasks[i]
			return &task, nil
		}
	}
	return nil, store.ErrTaskNotFound
}

// Update replaces the task's title, description, and priority.
// ID, completion state, and creation timestamp are left untouched.
func (s *TaskStore) Update(ctx context.Context, id int64, update store.TaskUpdate) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Title = update.Title
			s.tasks[i].Description = update.Description
			s.tasks[i].Priority = update.Priority
			task := s.tasks[i]
			return &task, nil
		}
	}
	return nil, store.ErrTaskNotFound
}

// Delete removes the task with the given ID. Succeeds whether or not a
// matching task existed.
func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.tasks[:0]
	for _, task := range s.tasks {
		if task.ID != id {
			kept = append(kept, task)
		}
	}
	s.tasks = kept
	return nil
}

// Complete marks the task with the given ID as completed.
func (s *TaskStore) Complete(ctx context.Context, id int64) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = true
			task := s.tasks[i]
			return &task, nil
		}
	}
	return nil, store.ErrTaskNotFound
}

// Counts reports the total and completed task counts in one snapshot.
func (s *TaskStore) Counts(ctx context.Context) (total, completed int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, task := range s.tasks {
		if task.Completed {
			completed++
		}
	}
	return len(s.tasks), completed, nil
}
