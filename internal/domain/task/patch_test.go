package task_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tasktrail/tasktrail/internal/domain/task"
	"github.com/tasktrail/tasktrail/internal/domain/user"
)

func Test_Patch_Apply(t *testing.T) {
	deadline := task.NewDate(2000, 8, 3)
	moved := task.NewDate(2020, 8, 3)

	v := task.Value{
		Title:       "title1",
		Description: "desc",
		Status:      task.New,
		Deadline:    &deadline,
	}

	assert.Equal(t, v, task.Patch{}.Apply(v), "empty patch changes nothing")

	title := "title2"
	st := task.Done

	got := task.Patch{Title: &title, Status: &st, Deadline: &moved}.Apply(v)
	assert.Equal(t, task.Value{
		Title:       "title2",
		Description: "desc",
		Status:      task.Done,
		Deadline:    &moved,
	}, got)

	empty := ""

	got = task.Patch{Description: &empty}.Apply(v)
	assert.Equal(t, "", got.Description, "explicit empty value overrides, nil inherits")
	assert.Equal(t, "title1", got.Title)
}

func Test_Authorize(t *testing.T) {
	owned := task.Entity{}
	owned.ID = 1
	owned.Owner = user.Identity{ID: 10}

	assert.NoError(t, task.Authorize(user.Identity{ID: 10}, owned))
	assert.Error(t, task.Authorize(user.Identity{ID: 11}, owned))
}
