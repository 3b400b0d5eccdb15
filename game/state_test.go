package game

import (
	"testing"
	"wumpus/config"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// scriptedRandom replays fixed draws, repeating the last one when exhausted.
type scriptedRandom struct {
	floats []float64
	ints   []int
}

func (r *scriptedRandom) Float64() float64 {
	v := r.floats[0]
	if len(r.floats) > 1 {
		r.floats = r.floats[1:]
	}
	return v
}

func (r *scriptedRandom) Intn(n int) int {
	v := r.ints[0]
	if len(r.ints) > 1 {
		r.ints = r.ints[1:]
	}
	return v % n
}

func gridConfig(width, height int) config.Config {
	cfg := config.Default()
	cfg.Width = width
	cfg.Height = height
	return cfg
}

func newTestWorld(t *testing.T, cfg config.Config, l Layout) *World {
	t.Helper()
	w, err := NewFromLayout(cfg, l, &scriptedRandom{floats: []float64{0}, ints: []int{0}})
	require.NoError(t, err)
	return w
}

func TestTraversability(t *testing.T) {
	w := newTestWorld(t, gridConfig(4, 4), Layout{
		Avatar:  Position{0, 0},
		Hazards: []Position{{2, 2}},
		Pits:    []Position{{1, 2}},
		Gold:    []Position{{3, 3}},
	})

	t.Run("cells off the grid are not traversable", func(t *testing.T) {
		require.False(t, w.IsTraversable(Position{-1, 0}))
		require.False(t, w.IsTraversable(Position{0, 4}))
		require.False(t, w.IsTraversable(Position{4, 0}))
	})

	t.Run("hazards and pits block their own cell", func(t *testing.T) {
		require.False(t, w.IsTraversable(Position{2, 2}), "hazard cell")
		require.False(t, w.IsTraversable(Position{1, 2}), "pit cell")
	})

	t.Run("adjacency to hazards and pits does not matter", func(t *testing.T) {
		require.True(t, w.IsTraversable(Position{2, 1}))
		require.True(t, w.IsTraversable(Position{1, 1}))
		require.True(t, w.IsTraversable(Position{3, 2}))
	})

	t.Run("gold and the avatar do not block", func(t *testing.T) {
		require.True(t, w.IsTraversable(Position{3, 3}))
		require.True(t, w.IsTraversable(Position{0, 0}))
	})
}

func TestLegalActions(t *testing.T) {
	w := newTestWorld(t, gridConfig(4, 4), Layout{
		Avatar:  Position{0, 0},
		Hazards: []Position{{2, 1}},
		Pits:    []Position{{1, 2}},
	})

	t.Run("open cell offers every direction in order", func(t *testing.T) {
		open := newTestWorld(t, gridConfig(3, 3), Layout{Avatar: Position{0, 0}})
		require.Equal(t, []Direction{East, West, North, South}, open.LegalActions(Position{1, 1}))
	})

	t.Run("corners drop moves leaving the grid", func(t *testing.T) {
		require.Equal(t, []Direction{East, North}, w.LegalActions(Position{0, 0}))
		require.Equal(t, []Direction{West, South}, w.LegalActions(Position{3, 3}))
	})

	t.Run("blocked neighbours are dropped", func(t *testing.T) {
		require.Equal(t, []Direction{West, South}, w.LegalActions(Position{1, 1}),
			"east is a hazard and north is a pit")
		require.Equal(t, []Direction{East, North}, w.LegalActions(Position{2, 2}),
			"west is a pit and south is a hazard")
	})

	t.Run("query does not change the world", func(t *testing.T) {
		before := w.Configuration()
		w.LegalActions(Position{1, 1})
		require.Equal(t, before, w.Configuration())
	})
}

func TestNewFromLayout(t *testing.T) {
	cfg := gridConfig(3, 3)
	rng := &scriptedRandom{floats: []float64{0}, ints: []int{0}}

	t.Run("rejects positions off the grid", func(t *testing.T) {
		_, err := NewFromLayout(cfg, Layout{Avatar: Position{3, 0}}, rng)
		require.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("rejects overlapping entities", func(t *testing.T) {
		_, err := NewFromLayout(cfg, Layout{Avatar: Position{1, 1}, Pits: []Position{{1, 1}}}, rng)
		require.ErrorIs(t, err, ErrOverlap)
	})

	t.Run("accessors return copies", func(t *testing.T) {
		w := newTestWorld(t, cfg, Layout{Avatar: Position{0, 0}, Hazards: []Position{{2, 2}}})
		hazards := w.Hazards()
		hazards[0] = Position{0, 1}
		require.Equal(t, []Position{{2, 2}}, w.Hazards())
	})
}

func TestRandomPlacement(t *testing.T) {
	cfg := gridConfig(5, 5)
	cfg.Wumpuses, cfg.Pits, cfg.Gold = 3, 4, 2

	t.Run("every entity gets its own cell", func(t *testing.T) {
		w, err := New(cfg, rand.New(rand.NewSource(1)))
		require.NoError(t, err)

		seen := map[Position]bool{w.Avatar(): true}
		for _, group := range [][]Position{w.Hazards(), w.Pits(), w.Gold()} {
			for _, p := range group {
				require.True(t, w.IsInBounds(p))
				require.False(t, seen[p], "duplicate cell %v", p)
				seen[p] = true
			}
		}
		require.Len(t, seen, 10)
	})

	t.Run("same seed gives the same world", func(t *testing.T) {
		a, err := New(cfg, rand.New(rand.NewSource(9)))
		require.NoError(t, err)
		b, err := New(cfg, rand.New(rand.NewSource(9)))
		require.NoError(t, err)
		require.Equal(t, a.Render(), b.Render())
	})

	t.Run("puzzle worlds hold no pits or gold", func(t *testing.T) {
		w, err := NewPuzzle(cfg, rand.New(rand.NewSource(3)))
		require.NoError(t, err)
		require.Len(t, w.Hazards(), 3)
		require.Empty(t, w.Pits())
		require.Empty(t, w.Gold())
	})

	t.Run("full grid has no free cell", func(t *testing.T) {
		_, err := PickUniquePosition(rand.New(rand.NewSource(1)), 0, 1, []Position{{0, 0}, {0, 1}})
		require.ErrorIs(t, err, ErrNoFreeCell)
	})
}

func TestRender(t *testing.T) {
	w := newTestWorld(t, gridConfig(3, 2), Layout{
		Avatar:  Position{0, 0},
		Hazards: []Position{{2, 1}},
		Pits:    []Position{{1, 0}},
		Gold:    []Position{{0, 1}},
	})

	require.Equal(t, "G.W\nAP.\n", w.Render(), "top row is drawn first")
}
