// Package task describes the task domain.
package task

import (
	"context"
	"fmt"

	"github.com/swaggest/usecase/status"
	"github.com/tasktrail/tasktrail/internal/domain/user"
)

// Creator creates tasks.
type Creator interface {
	Create(context.Context, user.Identity, Value) (Entity, Revision, error)
}

// Updater appends revisions to existing tasks.
type Updater interface {
	Update(context.Context, Identity, Patch) (Revision, error)
}

// Finder reads tasks.
type Finder interface {
	FindByID(context.Context, Identity) (Entity, error)
	Current(context.Context, Identity) (Revision, error)
	History(context.Context, Identity) (History, error)
}

// Deleter removes tasks together with their revisions.
type Deleter interface {
	Delete(context.Context, Identity) error
}

// Lister lists current revisions across an owner's tasks.
type Lister interface {
	ListCurrent(context.Context, user.Identity, Query) ([]Revision, error)
}

// Ordering values accepted by Query.
const (
	OrderDeadlineAsc  = "deadline"
	OrderDeadlineDesc = "-deadline"
)

// Query filters and orders a task listing.
type Query struct {
	Status   *Status `query:"status" json:"-"`
	Ordering string  `query:"ordering" json:"-" enum:"deadline,-deadline" description:"Order by deadline, prefix with - for descending."`
}

// Validate rejects ordering by anything but deadline.
func (q Query) Validate() error {
	switch q.Ordering {
	case "", OrderDeadlineAsc, OrderDeadlineDesc:
		return nil
	}

	return status.Wrap(fmt.Errorf("unsupported ordering %q", q.Ordering), status.InvalidArgument)
}
