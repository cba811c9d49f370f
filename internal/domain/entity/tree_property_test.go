package entity_test

import (
	"math/rand/v2"
	"testing"

	"github.com/bnema/sash/internal/domain/entity"
	"github.com/stretchr/testify/require"
)

// TestTree_RandomOperationsKeepInvariants drives the tree through random
// edits and checks the structural invariants after every step.
func TestTree_RandomOperationsKeepInvariants(t *testing.T) {
	positions := []entity.Position{entity.PositionLeft, entity.PositionRight, entity.PositionTop, entity.PositionBottom}

	for seed := uint64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed*7919))
		tree, err := entity.NewTree(entity.Pair{nil, nil}, entity.Rect{Width: 1600, Height: 1200})
		require.NoError(t, err)

		for step := 0; step < 200; step++ {
			leaves := tree.Leaves()
			pick := leaves[rng.IntN(len(leaves))]

			switch op := rng.IntN(8); {
			case op <= 1:
				// Splits that would leave either pane below its minimum are
				// refused; that is a legitimate outcome, not a failure.
				_, err := tree.AddPane(pick.ID, entity.AddPaneOptions{
					Position: positions[rng.IntN(len(positions))],
					Size:     entity.Fraction(0.2 + 0.6*rng.Float64()),
				})
				if err != nil {
					require.ErrorIs(t, err, entity.ErrInvalidSize, "seed %d step %d", seed, step)
				}
			case op == 2:
				if len(leaves) > 1 {
					require.NoError(t, tree.RemovePane(pick.ID), "seed %d step %d", seed, step)
				}
			case op == 3:
				parent, ok := tree.Parent(pick.ID)
				if !ok {
					continue
				}
				start, err := tree.PairExtents(parent.ID)
				require.NoError(t, err)
				_, err = tree.ResizeSiblingPair(parent.ID, start, (rng.Float64()-0.5)*start.First)
				require.NoError(t, err)
			case op == 4:
				other := leaves[rng.IntN(len(leaves))]
				require.NoError(t, tree.SwapLeaves(pick.ID, other.ID))
			case op == 5:
				other := leaves[rng.IntN(len(leaves))]
				_, err := tree.MoveLeaf(pick.ID, other.ID, positions[rng.IntN(len(positions))])
				if err != nil {
					require.ErrorIs(t, err, entity.ErrInvalidSize, "seed %d step %d", seed, step)
					require.Len(t, tree.Leaves(), len(leaves), "a refused move keeps every pane")
				}
			case op == 6:
				// Rebuilding restarts the ID generator over existing IDs.
				cfg := tree.Export()
				rebuilt, err := entity.NewTree(&cfg, tree.Bounds())
				require.NoError(t, err, "seed %d step %d", seed, step)
				require.Equal(t, tree.IDs(), rebuilt.IDs())
				tree = rebuilt
			default:
				w := 800 + rng.Float64()*1600
				h := 600 + rng.Float64()*1200
				require.NoError(t, tree.SetBounds(entity.Rect{Width: w, Height: h}))
			}

			require.NoError(t, tree.Validate(), "seed %d step %d", seed, step)
			require.Equal(t, 2*len(tree.Leaves())-1, tree.Len(), "seed %d step %d", seed, step)
		}
	}
}

// TestTree_AddRemoveIsReversible checks that removing a freshly added pane
// restores the previous geometry of every surviving node.
func TestTree_AddRemoveIsReversible(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))
	tree, err := entity.NewTree(entity.Pair{entity.Scalar{Value: 0.3}, entity.Pair{entity.Scalar{Value: "top"}, nil}}, entity.Rect{Width: 1200, Height: 900})
	require.NoError(t, err)

	positions := []entity.Position{entity.PositionLeft, entity.PositionRight, entity.PositionTop, entity.PositionBottom}
	for i := 0; i < 50; i++ {
		leaves := tree.Leaves()
		target := leaves[rng.IntN(len(leaves))]

		before := make(map[entity.NodeID]entity.Rect)
		for _, leaf := range leaves {
			before[leaf.ID] = leaf.Rect
		}

		added, err := tree.AddPane(target.ID, entity.AddPaneOptions{Position: positions[rng.IntN(len(positions))]})
		require.NoError(t, err)
		require.NoError(t, tree.RemovePane(added.ID))
		require.NoError(t, tree.Validate())

		for id, rect := range before {
			node, ok := tree.Node(id)
			require.True(t, ok)
			require.True(t, node.Rect.ApproxEqual(rect, 1e-9), "pane %s moved: %+v vs %+v", id, node.Rect, rect)
		}
	}
}
