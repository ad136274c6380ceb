package usecase

import (
	"context"

	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
	"github.com/tasktrail/tasktrail/internal/domain/task"
	"github.com/tasktrail/tasktrail/internal/infra/auth"
)

// CreateTask creates usecase interactor.
func CreateTask(deps interface {
	TaskCreator() task.Creator
}) usecase.Interactor {
	u := usecase.NewInteractor(func(ctx context.Context, in task.Value, out *task.Revision) error {
		identity, ok := auth.IdentityFromContext(ctx)
		if !ok {
			return status.Unauthenticated
		}

		_, rev, err := deps.TaskCreator().Create(ctx, identity, in)
		if err != nil {
			return err
		}

		*out = rev

		return nil
	})

	u.SetTitle("Create Task")
	u.SetDescription("Create a task with an initial current revision.")
	u.SetExpectedErrors(
		status.InvalidArgument,
		status.Unauthenticated,
	)
	u.SetTags("Tasks")

	return u
}
