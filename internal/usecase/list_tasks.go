package usecase

import (
	"context"

	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
	"github.com/tasktrail/tasktrail/internal/domain/task"
	"github.com/tasktrail/tasktrail/internal/infra/auth"
)

// ListTasks creates usecase interactor.
//
// The listing is scoped to the caller, other owners' tasks are never visible.
func ListTasks(deps interface {
	TaskLister() task.Lister
}) usecase.Interactor {
	u := usecase.NewInteractor(func(ctx context.Context, in task.Query, out *[]task.Revision) error {
		identity, ok := auth.IdentityFromContext(ctx)
		if !ok {
			return status.Unauthenticated
		}

		var err error
		*out, err = deps.TaskLister().ListCurrent(ctx, identity, in)

		return err
	})

	u.SetTitle("List Tasks")
	u.SetDescription("List current revisions of the caller's tasks, optionally filtered by status and ordered by deadline.")
	u.SetExpectedErrors(
		status.InvalidArgument,
		status.Unauthenticated,
	)
	u.SetTags("Tasks")

	return u
}
