package task

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/swaggest/usecase/status"
)

// Patch is a partial update, nil fields inherit the current revision.
type Patch struct {
	Title       *string `json:"title,omitempty" minLength:"1" maxLength:"64"`
	Description *string `json:"description,omitempty"`
	Status      *Status `json:"status,omitempty"`
	Deadline    *Date   `json:"deadline,omitempty"`
}

// Validate checks present fields only.
func (p Patch) Validate() error {
	if p.Title != nil {
		if *p.Title == "" {
			return status.Wrap(errors.New("title must not be empty"), status.InvalidArgument)
		}

		if utf8.RuneCountInString(*p.Title) > TitleMaxLen {
			return status.Wrap(fmt.Errorf("title exceeds %d characters", TitleMaxLen), status.InvalidArgument)
		}
	}

	if p.Status != nil && !p.Status.valid() {
		return status.Wrap(fmt.Errorf("unknown status %q", *p.Status), status.InvalidArgument)
	}

	return nil
}

// Apply overlays present patch fields onto a value.
func (p Patch) Apply(v Value) Value {
	if p.Title != nil {
		v.Title = *p.Title
	}

	if p.Description != nil {
		v.Description = *p.Description
	}

	if p.Status != nil {
		v.Status = *p.Status
	}

	if p.Deadline != nil {
		v.Deadline = p.Deadline
	}

	return v
}
