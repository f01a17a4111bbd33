package storage

import (
	"github.com/grow-cli/grow/internal/model"
)

// TaskStore holds the task collection.
type TaskStore struct {
	*Collection[model.Task]
}

// NewTaskStore creates the task store.
func NewTaskStore(db *DB) *TaskStore {
	return &TaskStore{Collection: NewCollection[model.Task](db, model.KeyTasks)}
}

// Toggle flips the completed flag of the matching task and persists the
// sequence. Unknown id is a no-op.
func (s *TaskStore) Toggle(id string) error {
	task, ok := s.Find(id)
	if !ok {
		return nil
	}
	task.Completed = !task.Completed
	return s.Update(id, task)
}

// Pending returns the tasks that are not completed, in store order.
func (s *TaskStore) Pending() []model.Task {
	var pending []model.Task
	for _, t := range s.Records() {
		if !t.Completed {
			pending = append(pending, t)
		}
	}
	return pending
}

// Completed returns the tasks that are completed, in store order.
func (s *TaskStore) Completed() []model.Task {
	var done []model.Task
	for _, t := range s.Records() {
		if t.Completed {
			done = append(done, t)
		}
	}
	return done
}
