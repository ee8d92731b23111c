package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dmarkov/taskdeck/internal/logging"
	"github.com/dmarkov/taskdeck/internal/models"
	"github.com/dmarkov/taskdeck/internal/repositories/kv"
)

const (
	taskKeyPrefix = "tasks:"

	// anonymousPartition backs deployments where tasks are used without a
	// logged-in user.
	anonymousPartition = "anonymous"
)

// TaskService owns the ordered task list of one active user partition.
// The whole partition is loaded on activation and rewritten on every
// mutation, so the persisted value is always a complete snapshot.
//
// Load must be re-run whenever the active user changes; it discards the
// previous in-memory list. Mutations update memory only after the rewrite
// succeeded.
type TaskService interface {
	Load(ctx context.Context, userID string) error
	Add(ctx context.Context, text string) error
	Toggle(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	ClearCompleted(ctx context.Context) error
	Tasks() []models.Task
}

type taskService struct {
	repo   kv.Repository
	log    logging.Logger
	userID string
	tasks  []models.Task
}

// NewTaskService constructs a TaskService with no active partition.
// Call Load before mutating.
func NewTaskService(repo kv.Repository, log logging.Logger) TaskService {
	return &taskService{repo: repo, log: log}
}

func partitionKey(userID string) string {
	if userID == "" {
		userID = anonymousPartition
	}
	return taskKeyPrefix + userID
}

// Load activates the partition of userID. An absent key is an empty list.
func (s *taskService) Load(ctx context.Context, userID string) error {
	data, err := s.repo.Get(ctx, partitionKey(userID))
	if err != nil {
		s.log.Error(ctx, "failed to load tasks", "user", userID, "error", err)
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	tasks := []models.Task{}
	if data != nil {
		if err := json.Unmarshal(data, &tasks); err != nil {
			s.log.Error(ctx, "failed to decode tasks", "user", userID, "error", err)
			return fmt.Errorf("failed to decode tasks: %w", err)
		}
	}

	s.userID = userID
	s.tasks = tasks
	return nil
}

func (s *taskService) persist(ctx context.Context, tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	if err := s.repo.Set(ctx, partitionKey(s.userID), data); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}

// Add prepends a new incomplete task. Text that is empty after trimming is
// ignored without touching storage.
func (s *taskService) Add(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	task := models.Task{ID: uuid.NewString(), Text: text, Completed: false}
	next := append([]models.Task{task}, s.tasks...)

	if err := s.persist(ctx, next); err != nil {
		s.log.Error(ctx, "failed to add task", "error", err)
		return err
	}
	s.tasks = next
	return nil
}

// Toggle flips the completed flag of the task with the given id. An unknown
// id leaves the list unchanged; the partition is rewritten either way.
func (s *taskService) Toggle(ctx context.Context, id string) error {
	next := make([]models.Task, len(s.tasks))
	copy(next, s.tasks)
	for i := range next {
		if next[i].ID == id {
			next[i].Completed = !next[i].Completed
			break
		}
	}

	if err := s.persist(ctx, next); err != nil {
		s.log.Error(ctx, "failed to toggle task", "id", id, "error", err)
		return err
	}
	s.tasks = next
	return nil
}

// Delete removes the task with the given id; an unknown id is not an error.
func (s *taskService) Delete(ctx context.Context, id string) error {
	next := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID != id {
			next = append(next, t)
		}
	}

	if err := s.persist(ctx, next); err != nil {
		s.log.Error(ctx, "failed to delete task", "id", id, "error", err)
		return err
	}
	s.tasks = next
	return nil
}

// ClearCompleted drops every completed task, keeping the relative order of
// the remaining ones.
func (s *taskService) ClearCompleted(ctx context.Context) error {
	next := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !t.Completed {
			next = append(next, t)
		}
	}

	if err := s.persist(ctx, next); err != nil {
		s.log.Error(ctx, "failed to clear completed tasks", "error", err)
		return err
	}
	s.tasks = next
	return nil
}

// Tasks returns a snapshot of the active partition's list.
func (s *taskService) Tasks() []models.Task {
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}
