// Package linking implements the generic mapping engine behind the
// Module↔Feature and Plan↔Module link tables. One parent, a set of
// candidate children, and a per-call Policy decide how the delta is
// computed and applied.
package linking

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// Store is the persistence surface the engine drives. Both mapping
// repositories satisfy it.
type Store interface {
	LinkedChildIDs(ctx context.Context, parentID uuid.UUID, candidates []uuid.UUID, activeOnly bool) ([]uuid.UUID, error)
	CreateLink(ctx context.Context, parentID, childID uuid.UUID) error
	DeleteLinks(ctx context.Context, parentID uuid.UUID, childIDs []uuid.UUID) (int64, error)
	DeactivateLinks(ctx context.Context, parentID uuid.UUID, childIDs []uuid.UUID) (int64, error)
}

// Resolver reports which of the candidate child ids actually exist.
type Resolver func(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)

// UnlinkStrategy selects how Unlink takes rows out of play.
type UnlinkStrategy int

const (
	// HardUnlink removes the rows entirely.
	HardUnlink UnlinkStrategy = iota
	// SoftUnlink flips is_active to false and keeps the rows.
	SoftUnlink
)

// Policy is the per-call configuration of the engine.
type Policy struct {
	// AllowPartialMatch drops unresolved candidates instead of failing
	// the whole call. The call still fails when nothing resolves.
	AllowPartialMatch bool

	// ActiveLinksOnly restricts the duplicate check to active rows, so
	// a soft-deleted link does not block re-adding.
	ActiveLinksOnly bool

	// Unlink decides between hard and soft removal.
	Unlink UnlinkStrategy
}

// Status tells the caller whether the call changed anything.
type Status int

const (
	StatusApplied Status = iota
	StatusNoOp
)

// Result describes what a Link or Unlink call did.
type Result struct {
	Status         Status
	Added          []uuid.UUID
	AlreadyPresent []uuid.UUID
	Removed        int64
}

var (
	// ErrNoneResolved means no candidate id matched an existing child.
	ErrNoneResolved = errors.New("linking: none of the candidate ids resolved")
	// ErrUnresolved means at least one candidate id did not resolve and
	// the policy forbids partial matches.
	ErrUnresolved = errors.New("linking: one or more candidate ids did not resolve")
)

// Engine applies set-difference link deltas against a Store.
type Engine struct {
	store   Store
	resolve Resolver
	policy  Policy
}

func NewEngine(store Store, resolve Resolver, policy Policy) *Engine {
	return &Engine{
		store:   store,
		resolve: resolve,
		policy:  policy,
	}
}

// Link attaches the candidate children to the parent. Candidates that
// are already linked are reported, not re-inserted; inserts fan out
// concurrently and are best effort, so a failure mid-way can leave a
// subset of the new links in place.
func (e *Engine) Link(ctx context.Context, parentID uuid.UUID, childIDs []uuid.UUID) (*Result, error) {
	requested := dedupe(childIDs)
	if len(requested) == 0 {
		return nil, ErrNoneResolved
	}

	resolved, err := e.resolve(ctx, requested)
	if err != nil {
		return nil, err
	}
	if len(resolved) == 0 {
		return nil, ErrNoneResolved
	}
	if !e.policy.AllowPartialMatch && len(resolved) < len(requested) {
		return nil, ErrUnresolved
	}

	existing, err := e.store.LinkedChildIDs(ctx, parentID, resolved, e.policy.ActiveLinksOnly)
	if err != nil {
		return nil, err
	}

	toAdd := difference(resolved, existing)
	if len(toAdd) == 0 {
		return &Result{Status: StatusNoOp, AlreadyPresent: existing}, nil
	}

	if err := e.fanOutCreate(ctx, parentID, toAdd); err != nil {
		return nil, err
	}

	return &Result{
		Status:         StatusApplied,
		Added:          toAdd,
		AlreadyPresent: existing,
	}, nil
}

// Unlink detaches the candidate children from the parent, hard or soft
// per the policy. A call that touches no rows is a no-op, not an error.
func (e *Engine) Unlink(ctx context.Context, parentID uuid.UUID, childIDs []uuid.UUID) (*Result, error) {
	requested := dedupe(childIDs)
	if len(requested) == 0 {
		return &Result{Status: StatusNoOp}, nil
	}

	var (
		removed int64
		err     error
	)
	switch e.policy.Unlink {
	case SoftUnlink:
		removed, err = e.store.DeactivateLinks(ctx, parentID, requested)
	default:
		removed, err = e.store.DeleteLinks(ctx, parentID, requested)
	}
	if err != nil {
		return nil, err
	}

	status := StatusApplied
	if removed == 0 {
		status = StatusNoOp
	}
	return &Result{Status: status, Removed: removed}, nil
}

// fanOutCreate inserts each link in its own goroutine and reports the
// first failure. There is no rollback of links that already landed.
func (e *Engine) fanOutCreate(ctx context.Context, parentID uuid.UUID, childIDs []uuid.UUID) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, childID := range childIDs {
		wg.Add(1)
		go func(childID uuid.UUID) {
			defer wg.Done()
			if err := e.store.CreateLink(ctx, parentID, childID); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(childID)
	}
	wg.Wait()
	return firstErr
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// difference returns the ids in a that are not in b, preserving order.
func difference(a, b []uuid.UUID) []uuid.UUID {
	exclude := make(map[uuid.UUID]struct{}, len(b))
	for _, id := range b {
		exclude[id] = struct{}{}
	}
	out := make([]uuid.UUID, 0, len(a))
	for _, id := range a {
		if _, ok := exclude[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}
