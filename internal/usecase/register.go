package usecase

import (
	"context"

	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
	"github.com/tasktrail/tasktrail/internal/domain/user"
)

// Register creates usecase interactor.
func Register(deps interface {
	UserRegistrar() user.Registrar
}) usecase.Interactor {
	u := usecase.NewInteractor(func(ctx context.Context, in user.Credentials, out *user.Entity) error {
		var err error
		*out, err = deps.UserRegistrar().Register(ctx, in)

		return err
	})

	u.SetTitle("Register")
	u.SetDescription("Register a user with username and password.")
	u.SetExpectedErrors(status.InvalidArgument)
	u.SetTags("Users")

	return u
}
