package task

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/swaggest/jsonschema-go"
	"github.com/swaggest/usecase/status"
	"github.com/tasktrail/tasktrail/internal/domain/user"
)

// Status describes task progress.
type Status string

// Available task statuses.
const (
	New        = Status("new")
	Planned    = Status("planned")
	InProgress = Status("in_progress")
	Done       = Status("done")
)

// DefaultStatus is assigned to a first revision created without an explicit status.
const DefaultStatus = New

var _ jsonschema.Exposer = Status("")

// JSONSchema exposes Status JSON schema, implements jsonschema.Exposer.
func (Status) JSONSchema() (jsonschema.Schema, error) {
	s := jsonschema.Schema{}
	s.
		WithType(jsonschema.String.Type()).
		WithTitle("Task Status").
		WithDefault(string(DefaultStatus)).
		WithEnum(New, Planned, InProgress, Done)

	return s, nil
}

func (s Status) valid() bool {
	switch s {
	case New, Planned, InProgress, Done:
		return true
	}

	return false
}

// TitleMaxLen bounds revision titles, counted in characters.
const TitleMaxLen = 64

// Identity identifies a task.
type Identity struct {
	ID int `json:"id"`
}

// Value is the content of one task revision.
type Value struct {
	Title       string `json:"title" minLength:"1" maxLength:"64" required:"true"`
	Description string `json:"description,omitempty"`
	Status      Status `json:"status,omitempty"`
	Deadline    *Date  `json:"deadline,omitempty"`
}

// Validate guards the store against writes that bypass schema validation.
func (v Value) Validate() error {
	if v.Title == "" {
		return status.Wrap(errors.New("title is required"), status.InvalidArgument)
	}

	if utf8.RuneCountInString(v.Title) > TitleMaxLen {
		return status.Wrap(fmt.Errorf("title exceeds %d characters", TitleMaxLen), status.InvalidArgument)
	}

	if v.Status != "" && !v.Status.valid() {
		return status.Wrap(fmt.Errorf("unknown status %q", v.Status), status.InvalidArgument)
	}

	return nil
}

// Entity is an identified task owned by a user.
//
// The entity itself is immutable once created, all mutable content lives in
// its revisions.
type Entity struct {
	Identity
	Owner     user.Identity `json:"-"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Revision is one immutable snapshot of task content.
//
// Exactly one revision per task is current, and it is always the most
// recently created one.
type Revision struct {
	ID     int `json:"id"`
	TaskID int `json:"taskId"`
	Value
	IsCurrent bool `json:"isCurrent"`
}

// History is a task with its full revision chain, oldest first.
type History struct {
	Identity
	CreatedAt time.Time  `json:"createdAt"`
	Revisions []Revision `json:"revisions"`
}
