package volunteer

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/VNoormal7/NeedsConnectV2/internal/kv"
	"github.com/VNoormal7/NeedsConnectV2/internal/utils"
	"github.com/VNoormal7/NeedsConnectV2/pkg/types"
)

// TaskRepository owns the volunteer task collection under the "tasks" key.
// Same id-assignment and collection-mutation pattern as the needs
// repository, without ranking or funding.
type TaskRepository struct {
	store kv.Store
}

func NewTaskRepository(store kv.Store) *TaskRepository {
	return &TaskRepository{store: store}
}

func (r *TaskRepository) List(ctx context.Context) ([]types.VolunteerTask, error) {
	var tasks []types.VolunteerTask
	err := r.store.Get(ctx, kv.KeyTasks, &tasks)
	if err != nil && !errors.Is(err, kv.ErrKeyNotFound) {
		return nil, utils.ErrorWrapOrNil(err, "failed to load tasks")
	}

	if tasks == nil {
		tasks = []types.VolunteerTask{}
	}

	return tasks, nil
}

func (r *TaskRepository) Create(ctx context.Context, input types.CreateTaskInput) (*types.VolunteerTask, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, types.NewValidationError("title", "must not be empty")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, types.NewValidationError("description", "must not be empty")
	}
	if strings.TrimSpace(input.Location) == "" {
		return nil, types.NewValidationError("location", "must not be empty")
	}
	if strings.TrimSpace(input.Date) == "" {
		return nil, types.NewValidationError("date", "must not be empty")
	}
	if input.RequiredVolunteers < 1 {
		return nil, types.NewValidationError("required_volunteers", "must be at least 1")
	}

	tasks, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	task := types.VolunteerTask{
		ID:                   nextTaskID(tasks),
		Title:                strings.TrimSpace(input.Title),
		Description:          strings.TrimSpace(input.Description),
		Location:             strings.TrimSpace(input.Location),
		Date:                 input.Date,
		RequiredVolunteers:   input.RequiredVolunteers,
		RegisteredVolunteers: []types.TaskRegistration{},
		CreatedAt:            time.Now().UTC(),
	}

	tasks = append(tasks, task)
	if err := r.save(ctx, tasks); err != nil {
		return nil, err
	}

	return &task, nil
}

// RegisterHelper signs a user up for a task. Registering twice under the
// same username is a no-op.
func (r *TaskRepository) RegisterHelper(ctx context.Context, taskID int, username string) (*types.VolunteerTask, error) {
	tasks, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range tasks {
		if tasks[i].ID == taskID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, types.ErrTaskNotFound
	}

	task := &tasks[idx]
	for _, registration := range task.RegisteredVolunteers {
		if registration.Username == username {
			registered := *task
			return &registered, nil
		}
	}

	task.RegisteredVolunteers = append(task.RegisteredVolunteers, types.TaskRegistration{
		Username:     username,
		RegisteredAt: time.Now().UTC(),
	})

	if err := r.save(ctx, tasks); err != nil {
		return nil, err
	}

	registered := tasks[idx]
	return &registered, nil
}

func (r *TaskRepository) save(ctx context.Context, tasks []types.VolunteerTask) error {
	return utils.ErrorWrapOrNil(r.store.Set(ctx, kv.KeyTasks, tasks), "failed to save tasks")
}

func nextTaskID(tasks []types.VolunteerTask) int {
	maxID := 0
	for _, task := range tasks {
		if task.ID > maxID {
			maxID = task.ID
		}
	}
	return maxID + 1
}
