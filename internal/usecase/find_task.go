package usecase

import (
	"context"

	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
	"github.com/tasktrail/tasktrail/internal/domain/task"
	"github.com/tasktrail/tasktrail/internal/infra/auth"
)

// FindTask creates usecase interactor.
func FindTask(deps interface {
	TaskFinder() task.Finder
}) usecase.Interactor {
	u := usecase.NewInteractor(func(ctx context.Context, in task.Identity, out *task.Revision) error {
		identity, ok := auth.IdentityFromContext(ctx)
		if !ok {
			return status.Unauthenticated
		}

		t, err := deps.TaskFinder().FindByID(ctx, in)
		if err != nil {
			return err
		}

		if err := task.Authorize(identity, t); err != nil {
			return err
		}

		*out, err = deps.TaskFinder().Current(ctx, in)

		return err
	})

	u.SetTitle("Retrieve Task")
	u.SetDescription("Retrieve the current revision of a task.")
	u.SetExpectedErrors(
		status.NotFound,
		status.PermissionDenied,
		status.Unauthenticated,
		status.InvalidArgument,
	)
	u.SetTags("Tasks")

	return u
}
