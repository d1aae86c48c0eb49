// Package memory holds in-process repository implementations. The link
// store backs the mapping engine in tests and local tooling where no
// database is available.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type linkRow struct {
	ChildID  uuid.UUID
	IsActive bool
}

// LinkStore is a go-cache backed linking.Store. Rows for a parent live
// under the parent id key. FailCreateFor can be set to make a specific
// insert fail, which lets tests exercise the best-effort fan-out.
type LinkStore struct {
	mu    sync.Mutex
	cache *cache.Cache

	FailCreateFor map[uuid.UUID]error
}

func NewLinkStore() *LinkStore {
	return &LinkStore{
		cache: cache.New(cache.NoExpiration, 10*time.Minute),
	}
}

func (s *LinkStore) rows(parentID uuid.UUID) []linkRow {
	if x, found := s.cache.Get(parentID.String()); found {
		return x.([]linkRow)
	}
	return nil
}

func (s *LinkStore) LinkedChildIDs(ctx context.Context, parentID uuid.UUID, candidates []uuid.UUID, activeOnly bool) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[uuid.UUID]struct{}, len(candidates))
	for _, id := range candidates {
		wanted[id] = struct{}{}
	}

	var linked []uuid.UUID
	for _, row := range s.rows(parentID) {
		if _, ok := wanted[row.ChildID]; !ok {
			continue
		}
		if activeOnly && !row.IsActive {
			continue
		}
		linked = append(linked, row.ChildID)
	}
	return linked, nil
}

func (s *LinkStore) CreateLink(ctx context.Context, parentID, childID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err, ok := s.FailCreateFor[childID]; ok {
		return err
	}

	rows := append(s.rows(parentID), linkRow{ChildID: childID, IsActive: true})
	s.cache.Set(parentID.String(), rows, cache.NoExpiration)
	return nil
}

func (s *LinkStore) DeleteLinks(ctx context.Context, parentID uuid.UUID, childIDs []uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	drop := make(map[uuid.UUID]struct{}, len(childIDs))
	for _, id := range childIDs {
		drop[id] = struct{}{}
	}

	var kept []linkRow
	var removed int64
	for _, row := range s.rows(parentID) {
		if _, ok := drop[row.ChildID]; ok {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	s.cache.Set(parentID.String(), kept, cache.NoExpiration)
	return removed, nil
}

func (s *LinkStore) DeactivateLinks(ctx context.Context, parentID uuid.UUID, childIDs []uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := make(map[uuid.UUID]struct{}, len(childIDs))
	for _, id := range childIDs {
		target[id] = struct{}{}
	}

	rows := s.rows(parentID)
	var removed int64
	for i, row := range rows {
		if _, ok := target[row.ChildID]; ok && row.IsActive {
			rows[i].IsActive = false
			removed++
		}
	}
	s.cache.Set(parentID.String(), rows, cache.NoExpiration)
	return removed, nil
}

// ActiveChildIDs reports every active child of the parent, in insert
// order. Test helper.
func (s *LinkStore) ActiveChildIDs(parentID uuid.UUID) []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []uuid.UUID
	for _, row := range s.rows(parentID) {
		if row.IsActive {
			out = append(out, row.ChildID)
		}
	}
	return out
}
