// Package repository implements domain services with in-memory repositories.
package repository

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/swaggest/usecase/status"
	"github.com/tasktrail/tasktrail/internal/domain/task"
	"github.com/tasktrail/tasktrail/internal/domain/user"
)

// taskRecord holds one task with its revision chain.
//
// mu spans the whole read-current/append-new-current sequence, so updates to
// the same task serialize while tasks stay independent of each other.
type taskRecord struct {
	mu        sync.Mutex
	entity    task.Entity
	revisions []task.Revision
	deleted   bool
}

// Task is an in-memory versioned task repository.
//
// A task is never updated in place: every update appends a revision and flips
// the previous current one to non-current.
type Task struct {
	mu         sync.RWMutex
	lastTaskID int
	lastRevID  atomic.Int64
	tasks      map[int]*taskRecord
}

// NewTask creates an empty task repository.
func NewTask() *Task {
	return &Task{tasks: make(map[int]*taskRecord)}
}

// TaskCreator is a service provider.
func (tr *Task) TaskCreator() task.Creator {
	return tr
}

// Create stores a new task owned by owner with its first, current revision.
func (tr *Task) Create(_ context.Context, owner user.Identity, v task.Value) (task.Entity, task.Revision, error) {
	if v.Status == "" {
		v.Status = task.DefaultStatus
	}

	if err := v.Validate(); err != nil {
		return task.Entity{}, task.Revision{}, err
	}

	tr.mu.Lock()
	defer tr.mu.Unlock()

	tr.lastTaskID++

	t := task.Entity{}
	t.ID = tr.lastTaskID
	t.Owner = owner
	t.CreatedAt = time.Now()

	rev := task.Revision{
		ID:        int(tr.lastRevID.Add(1)),
		TaskID:    t.ID,
		Value:     v,
		IsCurrent: true,
	}

	if tr.tasks == nil {
		tr.tasks = make(map[int]*taskRecord, 1)
	}

	tr.tasks[t.ID] = &taskRecord{entity: t, revisions: []task.Revision{rev}}

	return t, rev, nil
}

func (tr *Task) record(id int) (*taskRecord, error) {
	tr.mu.RLock()
	rec, found := tr.tasks[id]
	tr.mu.RUnlock()

	if !found {
		return nil, status.NotFound
	}

	return rec, nil
}

// TaskFinder is a service provider.
func (tr *Task) TaskFinder() task.Finder {
	return tr
}

// FindByID finds the owning task entity by identity.
func (tr *Task) FindByID(_ context.Context, identity task.Identity) (task.Entity, error) {
	rec, err := tr.record(identity.ID)
	if err != nil {
		return task.Entity{}, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if rec.deleted {
		return task.Entity{}, status.NotFound
	}

	return rec.entity, nil
}

// Current returns the revision flagged current.
func (tr *Task) Current(_ context.Context, identity task.Identity) (task.Revision, error) {
	rec, err := tr.record(identity.ID)
	if err != nil {
		return task.Revision{}, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if rec.deleted || len(rec.revisions) == 0 {
		return task.Revision{}, status.NotFound
	}

	return rec.revisions[len(rec.revisions)-1], nil
}

// History returns the task with all of its revisions, oldest first.
func (tr *Task) History(_ context.Context, identity task.Identity) (task.History, error) {
	rec, err := tr.record(identity.ID)
	if err != nil {
		return task.History{}, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if rec.deleted {
		return task.History{}, status.NotFound
	}

	h := task.History{}
	h.Identity = rec.entity.Identity
	h.CreatedAt = rec.entity.CreatedAt
	h.Revisions = append([]task.Revision(nil), rec.revisions...)

	return h, nil
}

// TaskUpdater is a service provider.
func (tr *Task) TaskUpdater() task.Updater {
	return tr
}

// Update appends a new current revision composed from the previous current
// one overlaid with patch, flipping the previous one to non-current.
func (tr *Task) Update(_ context.Context, identity task.Identity, p task.Patch) (task.Revision, error) {
	if err := p.Validate(); err != nil {
		return task.Revision{}, err
	}

	rec, err := tr.record(identity.ID)
	if err != nil {
		return task.Revision{}, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if rec.deleted || len(rec.revisions) == 0 {
		return task.Revision{}, status.NotFound
	}

	prev := &rec.revisions[len(rec.revisions)-1]
	prev.IsCurrent = false

	rev := task.Revision{
		ID:        int(tr.lastRevID.Add(1)),
		TaskID:    identity.ID,
		Value:     p.Apply(prev.Value),
		IsCurrent: true,
	}

	rec.revisions = append(rec.revisions, rev)

	return rev, nil
}

// TaskDeleter is a service provider.
func (tr *Task) TaskDeleter() task.Deleter {
	return tr
}

// Delete removes the task and cascades removal of all its revisions.
func (tr *Task) Delete(_ context.Context, identity task.Identity) error {
	tr.mu.Lock()
	rec, found := tr.tasks[identity.ID]

	if found {
		delete(tr.tasks, identity.ID)
	}
	tr.mu.Unlock()

	if !found {
		return status.NotFound
	}

	// Operations that already hold the record observe the tombstone.
	rec.mu.Lock()
	defer rec.mu.Unlock()

	rec.deleted = true
	rec.revisions = nil

	return nil
}

// TaskLister is a service provider.
func (tr *Task) TaskLister() task.Lister {
	return tr
}

// ListCurrent returns current revisions of all tasks owned by owner,
// optionally filtered by status and ordered by deadline.
func (tr *Task) ListCurrent(_ context.Context, owner user.Identity, q task.Query) ([]task.Revision, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	tr.mu.RLock()
	recs := make([]*taskRecord, 0, len(tr.tasks))

	for _, rec := range tr.tasks {
		recs = append(recs, rec)
	}
	tr.mu.RUnlock()

	result := make([]task.Revision, 0, len(recs))

	for _, rec := range recs {
		rec.mu.Lock()

		if !rec.deleted && rec.entity.Owner == owner && len(rec.revisions) > 0 {
			cur := rec.revisions[len(rec.revisions)-1]
			if q.Status == nil || cur.Status == *q.Status {
				result = append(result, cur)
			}
		}

		rec.mu.Unlock()
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].TaskID < result[j].TaskID
	})

	if q.Ordering != "" {
		desc := q.Ordering == task.OrderDeadlineDesc

		// Revisions without a deadline sort last regardless of direction.
		sort.SliceStable(result, func(i, j int) bool {
			di, dj := result[i].Deadline, result[j].Deadline

			switch {
			case di == nil:
				return false
			case dj == nil:
				return true
			case desc:
				return dj.Time.Before(di.Time)
			default:
				return di.Time.Before(dj.Time)
			}
		})
	}

	return result, nil
}
