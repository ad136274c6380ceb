package usecase

import (
	"context"

	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
	"github.com/tasktrail/tasktrail/internal/domain/user"
)

type loginOutput struct {
	Token user.Token `json:"token"`
}

// Login creates usecase interactor.
func Login(deps interface {
	UserAuthenticator() user.Authenticator
}) usecase.Interactor {
	u := usecase.NewInteractor(func(ctx context.Context, in user.Credentials, out *loginOutput) error {
		t, err := deps.UserAuthenticator().Login(ctx, in)
		if err != nil {
			return err
		}

		out.Token = t

		return nil
	})

	u.SetTitle("Login")
	u.SetDescription("Exchange username and password for an opaque token.")
	u.SetExpectedErrors(status.InvalidArgument)
	u.SetTags("Users")

	return u
}
