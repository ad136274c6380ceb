package usecase

import (
	"context"

	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
	"github.com/tasktrail/tasktrail/internal/domain/task"
	"github.com/tasktrail/tasktrail/internal/infra/auth"
)

type deleteTaskDeps interface {
	TaskFinder() task.Finder
	TaskDeleter() task.Deleter
}

// DeleteTask creates usecase interactor.
func DeleteTask(deps deleteTaskDeps) usecase.IOInteractor {
	u := usecase.NewIOI(new(task.Identity), nil, func(ctx context.Context, input, _ interface{}) error {
		in := input.(*task.Identity)

		identity, ok := auth.IdentityFromContext(ctx)
		if !ok {
			return status.Unauthenticated
		}

		t, err := deps.TaskFinder().FindByID(ctx, *in)
		if err != nil {
			return err
		}

		if err := task.Authorize(identity, t); err != nil {
			return err
		}

		return deps.TaskDeleter().Delete(ctx, *in)
	})

	u.SetTitle("Delete Task")
	u.SetDescription("Delete a task and all of its revisions.")
	u.SetExpectedErrors(
		status.NotFound,
		status.PermissionDenied,
		status.Unauthenticated,
		status.InvalidArgument,
	)
	u.SetTags("Tasks")

	return u
}
