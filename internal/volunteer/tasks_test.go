package volunteer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VNoormal7/NeedsConnectV2/internal/kv"
	"github.com/VNoormal7/NeedsConnectV2/pkg/types"
)

func validTask() types.CreateTaskInput {
	return types.CreateTaskInput{
		Title:              "Food bank shift",
		Description:        "Sort and pack donations",
		Location:           "Community center",
		Date:               "2025-07-01",
		RequiredVolunteers: 4,
	}
}

func TestTaskCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(kv.NewMemory())

	task, err := repo.Create(ctx, validTask())
	require.NoError(t, err)

	assert.Equal(t, 1, task.ID)
	assert.NotNil(t, task.RegisteredVolunteers)
	assert.Empty(t, task.RegisteredVolunteers)
	assert.False(t, task.CreatedAt.IsZero())

	second, err := repo.Create(ctx, validTask())
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestTaskCreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.CreateTaskInput)
	}{
		{"empty title", func(in *types.CreateTaskInput) { in.Title = "" }},
		{"empty description", func(in *types.CreateTaskInput) { in.Description = " " }},
		{"empty location", func(in *types.CreateTaskInput) { in.Location = "" }},
		{"empty date", func(in *types.CreateTaskInput) { in.Date = "" }},
		{"zero required volunteers", func(in *types.CreateTaskInput) { in.RequiredVolunteers = 0 }},
	}

	repo := NewTaskRepository(kv.NewMemory())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validTask()
			tt.mutate(&input)

			_, err := repo.Create(context.Background(), input)
			var validationErr *types.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestRegisterHelper(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(kv.NewMemory())

	task, err := repo.Create(ctx, validTask())
	require.NoError(t, err)

	registered, err := repo.RegisterHelper(ctx, task.ID, "maria")
	require.NoError(t, err)
	require.Len(t, registered.RegisteredVolunteers, 1)
	assert.Equal(t, "maria", registered.RegisteredVolunteers[0].Username)

	// Same username again is a no-op.
	registered, err = repo.RegisterHelper(ctx, task.ID, "maria")
	require.NoError(t, err)
	assert.Len(t, registered.RegisteredVolunteers, 1)

	registered, err = repo.RegisterHelper(ctx, task.ID, "sam")
	require.NoError(t, err)
	assert.Len(t, registered.RegisteredVolunteers, 2)

	_, err = repo.RegisterHelper(ctx, 99, "maria")
	assert.ErrorIs(t, err, types.ErrTaskNotFound)
}

func TestVolunteerCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewVolunteerRepository(kv.NewMemory())

	volunteer, err := repo.Create(ctx, types.CreateVolunteerInput{
		Name:   "Maria",
		Email:  "maria@example.org",
		Skills: "logistics",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, volunteer.ID)
	assert.False(t, volunteer.RegisteredAt.IsZero())

	_, err = repo.Create(ctx, types.CreateVolunteerInput{Name: "", Email: "x@example.org"})
	var validationErr *types.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	_, err = repo.Create(ctx, types.CreateVolunteerInput{Name: "Sam", Email: ""})
	assert.ErrorAs(t, err, &validationErr)
}
