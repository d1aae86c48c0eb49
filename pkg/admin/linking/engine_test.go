package linking_test

import (
	"context"
	"errors"
	"testing"

	"carelytix-be/internal/repository/memory"
	"carelytix-be/pkg/admin/linking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resolverFor resolves only the given ids, in request order.
func resolverFor(known ...uuid.UUID) linking.Resolver {
	set := make(map[uuid.UUID]struct{}, len(known))
	for _, id := range known {
		set[id] = struct{}{}
	}
	return func(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
		var resolved []uuid.UUID
		for _, id := range ids {
			if _, ok := set[id]; ok {
				resolved = append(resolved, id)
			}
		}
		return resolved, nil
	}
}

func TestLinkAddsOnlyMissingChildren(t *testing.T) {
	parent := uuid.New()
	a, b := uuid.New(), uuid.New()

	store := memory.NewLinkStore()
	require.NoError(t, store.CreateLink(context.Background(), parent, a))

	engine := linking.NewEngine(store, resolverFor(a, b), linking.Policy{})

	result, err := engine.Link(context.Background(), parent, []uuid.UUID{a, b})
	require.NoError(t, err)

	assert.Equal(t, linking.StatusApplied, result.Status)
	assert.Equal(t, []uuid.UUID{b}, result.Added)
	assert.Equal(t, []uuid.UUID{a}, result.AlreadyPresent)
	assert.ElementsMatch(t, []uuid.UUID{a, b}, store.ActiveChildIDs(parent))
}

func TestLinkIsIdempotent(t *testing.T) {
	parent := uuid.New()
	a := uuid.New()

	store := memory.NewLinkStore()
	engine := linking.NewEngine(store, resolverFor(a), linking.Policy{})

	first, err := engine.Link(context.Background(), parent, []uuid.UUID{a})
	require.NoError(t, err)
	assert.Equal(t, linking.StatusApplied, first.Status)

	second, err := engine.Link(context.Background(), parent, []uuid.UUID{a})
	require.NoError(t, err)
	assert.Equal(t, linking.StatusNoOp, second.Status)
	assert.Empty(t, second.Added)
	assert.Equal(t, []uuid.UUID{a}, second.AlreadyPresent)

	// No duplicate row was written.
	assert.Equal(t, []uuid.UUID{a}, store.ActiveChildIDs(parent))
}

func TestLinkDeduplicatesRequest(t *testing.T) {
	parent := uuid.New()
	a := uuid.New()

	store := memory.NewLinkStore()
	engine := linking.NewEngine(store, resolverFor(a), linking.Policy{})

	result, err := engine.Link(context.Background(), parent, []uuid.UUID{a, a, a})
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{a}, result.Added)
	assert.Equal(t, []uuid.UUID{a}, store.ActiveChildIDs(parent))
}

func TestLinkPartialMatchDropsUnresolved(t *testing.T) {
	parent := uuid.New()
	known, unknown := uuid.New(), uuid.New()

	store := memory.NewLinkStore()
	engine := linking.NewEngine(store, resolverFor(known), linking.Policy{AllowPartialMatch: true})

	result, err := engine.Link(context.Background(), parent, []uuid.UUID{known, unknown})
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{known}, result.Added)
	assert.Equal(t, []uuid.UUID{known}, store.ActiveChildIDs(parent))
}

func TestLinkPartialMatchFailsWhenNoneResolve(t *testing.T) {
	parent := uuid.New()

	store := memory.NewLinkStore()
	engine := linking.NewEngine(store, resolverFor(), linking.Policy{AllowPartialMatch: true})

	_, err := engine.Link(context.Background(), parent, []uuid.UUID{uuid.New(), uuid.New()})
	assert.ErrorIs(t, err, linking.ErrNoneResolved)
	assert.Empty(t, store.ActiveChildIDs(parent))
}

func TestLinkStrictFailsOnAnyUnresolved(t *testing.T) {
	parent := uuid.New()
	known := uuid.New()

	store := memory.NewLinkStore()
	engine := linking.NewEngine(store, resolverFor(known), linking.Policy{})

	_, err := engine.Link(context.Background(), parent, []uuid.UUID{known, uuid.New()})
	assert.ErrorIs(t, err, linking.ErrUnresolved)

	// Strict mode writes nothing when validation fails.
	assert.Empty(t, store.ActiveChildIDs(parent))
}

func TestUnlinkHardRemovesRows(t *testing.T) {
	parent := uuid.New()
	a, b := uuid.New(), uuid.New()

	store := memory.NewLinkStore()
	ctx := context.Background()
	require.NoError(t, store.CreateLink(ctx, parent, a))
	require.NoError(t, store.CreateLink(ctx, parent, b))

	engine := linking.NewEngine(store, resolverFor(a, b), linking.Policy{Unlink: linking.HardUnlink})

	result, err := engine.Unlink(ctx, parent, []uuid.UUID{a})
	require.NoError(t, err)

	assert.Equal(t, linking.StatusApplied, result.Status)
	assert.Equal(t, int64(1), result.Removed)
	assert.Equal(t, []uuid.UUID{b}, store.ActiveChildIDs(parent))
}

func TestUnlinkSoftKeepsRowAndAllowsReAdd(t *testing.T) {
	parent := uuid.New()
	a := uuid.New()

	store := memory.NewLinkStore()
	ctx := context.Background()

	policy := linking.Policy{ActiveLinksOnly: true, Unlink: linking.SoftUnlink}
	engine := linking.NewEngine(store, resolverFor(a), policy)

	_, err := engine.Link(ctx, parent, []uuid.UUID{a})
	require.NoError(t, err)

	removed, err := engine.Unlink(ctx, parent, []uuid.UUID{a})
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed.Removed)
	assert.Empty(t, store.ActiveChildIDs(parent))

	// The deactivated row does not count as a duplicate.
	again, err := engine.Link(ctx, parent, []uuid.UUID{a})
	require.NoError(t, err)
	assert.Equal(t, linking.StatusApplied, again.Status)
	assert.Equal(t, []uuid.UUID{a}, again.Added)
	assert.Equal(t, []uuid.UUID{a}, store.ActiveChildIDs(parent))
}

func TestUnlinkNothingMatchedIsNoOp(t *testing.T) {
	store := memory.NewLinkStore()
	engine := linking.NewEngine(store, resolverFor(), linking.Policy{Unlink: linking.HardUnlink})

	result, err := engine.Unlink(context.Background(), uuid.New(), []uuid.UUID{uuid.New()})
	require.NoError(t, err)

	assert.Equal(t, linking.StatusNoOp, result.Status)
	assert.Equal(t, int64(0), result.Removed)
}

func TestUnlinkSoftIsIdempotent(t *testing.T) {
	parent := uuid.New()
	a := uuid.New()

	store := memory.NewLinkStore()
	ctx := context.Background()
	require.NoError(t, store.CreateLink(ctx, parent, a))

	engine := linking.NewEngine(store, resolverFor(a), linking.Policy{ActiveLinksOnly: true, Unlink: linking.SoftUnlink})

	first, err := engine.Unlink(ctx, parent, []uuid.UUID{a})
	require.NoError(t, err)
	assert.Equal(t, linking.StatusApplied, first.Status)

	second, err := engine.Unlink(ctx, parent, []uuid.UUID{a})
	require.NoError(t, err)
	assert.Equal(t, linking.StatusNoOp, second.Status)
}

func TestLinkFanOutIsBestEffort(t *testing.T) {
	parent := uuid.New()
	ok, bad := uuid.New(), uuid.New()

	store := memory.NewLinkStore()
	boom := errors.New("insert failed")
	store.FailCreateFor = map[uuid.UUID]error{bad: boom}

	engine := linking.NewEngine(store, resolverFor(ok, bad), linking.Policy{})

	_, err := engine.Link(context.Background(), parent, []uuid.UUID{ok, bad})
	assert.ErrorIs(t, err, boom)

	// The sibling insert that succeeded is not rolled back.
	assert.Equal(t, []uuid.UUID{ok}, store.ActiveChildIDs(parent))
}
