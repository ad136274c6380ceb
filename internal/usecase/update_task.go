package usecase

import (
	"context"

	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
	"github.com/tasktrail/tasktrail/internal/domain/task"
	"github.com/tasktrail/tasktrail/internal/infra/auth"
)

type updateTaskInput struct {
	task.Identity `json:"-"`
	task.Patch
}

// UpdateTask creates usecase interactor.
//
// An update never mutates the stored revision, it appends a new current one.
func UpdateTask(deps interface {
	TaskFinder() task.Finder
	TaskUpdater() task.Updater
}) usecase.Interactor {
	u := usecase.NewInteractor(func(ctx context.Context, in updateTaskInput, out *task.Revision) error {
		identity, ok := auth.IdentityFromContext(ctx)
		if !ok {
			return status.Unauthenticated
		}

		t, err := deps.TaskFinder().FindByID(ctx, in.Identity)
		if err != nil {
			return err
		}

		if err := task.Authorize(identity, t); err != nil {
			return err
		}

		*out, err = deps.TaskUpdater().Update(ctx, in.Identity, in.Patch)

		return err
	})

	u.SetName("updateTask")
	u.SetTitle("Update Task")
	u.SetDescription("Append a new current revision composed from the previous one and the given fields.")
	u.SetExpectedErrors(
		status.NotFound,
		status.PermissionDenied,
		status.Unauthenticated,
		status.InvalidArgument,
	)
	u.SetTags("Tasks")

	return u
}
