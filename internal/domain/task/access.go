package task

import (
	"errors"

	"github.com/swaggest/usecase/status"
	"github.com/tasktrail/tasktrail/internal/domain/user"
)

// Authorize checks that u owns t.
//
// Listing is implicitly scoped to the caller and does not go through here.
func Authorize(u user.Identity, t Entity) error {
	if t.Owner != u {
		return status.Wrap(errors.New("you must be owner of this object"), status.PermissionDenied)
	}

	return nil
}
