package agent

import (
	"slices"
	"testing"
	"wumpus/config"
	"wumpus/game"
	"wumpus/searcher"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newWorld(t *testing.T, width, height int, l game.Layout) *game.World {
	t.Helper()
	cfg := config.Default()
	cfg.Width = width
	cfg.Height = height
	w, err := game.NewFromLayout(cfg, l, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	return w
}

func TestNearestGold(t *testing.T) {
	t.Run("picks the closest piece", func(t *testing.T) {
		w := newWorld(t, 6, 6, game.Layout{
			Avatar: game.Position{X: 0, Y: 0},
			Gold:   []game.Position{{X: 5, Y: 5}, {X: 0, Y: 3}, {X: 2, Y: 2}},
		})
		g, ok := nearestGold(w, w.Avatar())
		require.True(t, ok)
		require.Equal(t, game.Position{X: 2, Y: 2}, g)
	})

	t.Run("reports when no gold is left", func(t *testing.T) {
		w := newWorld(t, 3, 3, game.Layout{Avatar: game.Position{X: 0, Y: 0}})
		_, ok := nearestGold(w, w.Avatar())
		require.False(t, ok)
	})
}

func TestSearchAgent(t *testing.T) {
	t.Run("first move follows the plan", func(t *testing.T) {
		w := newWorld(t, 4, 1, game.Layout{
			Avatar: game.Position{X: 0, Y: 0},
			Gold:   []game.Position{{X: 3, Y: 0}},
		})
		d, m := NewSearchAgent(searcher.BreadthFirst).FindMove(w)
		require.Equal(t, game.East, d)
		require.Equal(t, 3, m.PlanLength)
	})

	t.Run("collects all gold on its own", func(t *testing.T) {
		w := newWorld(t, 5, 5, game.Layout{
			Avatar: game.Position{X: 0, Y: 0},
			Pits:   []game.Position{{X: 1, Y: 1}, {X: 2, Y: 3}},
			Gold:   []game.Position{{X: 4, Y: 4}, {X: 3, Y: 0}},
		})
		a := NewSearchAgent(searcher.AStar)
		for turn := 0; turn < 50 && !w.IsEnded(); turn++ {
			d, _ := a.FindMove(w)
			w.UpdateAvatar(d)
		}
		require.Equal(t, game.Won, w.Status())
	})

	t.Run("stays put when no gold is left", func(t *testing.T) {
		w := newWorld(t, 3, 3, game.Layout{Avatar: game.Position{X: 1, Y: 1}})
		d, _ := NewSearchAgent(searcher.DepthFirst).FindMove(w)
		require.Equal(t, game.None, d)
	})

	t.Run("falls back to a direct move when gold is unreachable", func(t *testing.T) {
		// gold is boxed in by a pit and a wumpus
		w := newWorld(t, 4, 4, game.Layout{
			Avatar:  game.Position{X: 0, Y: 0},
			Hazards: []game.Position{{X: 3, Y: 2}},
			Pits:    []game.Position{{X: 2, Y: 3}},
			Gold:    []game.Position{{X: 3, Y: 3}},
		})
		d, m := NewSearchAgent(searcher.BreadthFirst).FindMove(w)
		require.False(t, m.Found)
		require.Equal(t, game.East, d)
	})
}

func TestDirectMove(t *testing.T) {
	w := newWorld(t, 4, 4, game.Layout{
		Avatar:  game.Position{X: 1, Y: 1},
		Hazards: []game.Position{{X: 2, Y: 1}},
		Pits:    []game.Position{{X: 1, Y: 2}},
	})

	t.Run("closes x before y", func(t *testing.T) {
		require.Equal(t, game.West, directMove(w, game.Position{X: 1, Y: 1}, game.Position{X: 0, Y: 3}))
	})

	t.Run("uses y when x is blocked", func(t *testing.T) {
		require.Equal(t, game.South, directMove(w, game.Position{X: 1, Y: 1}, game.Position{X: 3, Y: 0}))
	})

	t.Run("sidesteps when both are blocked", func(t *testing.T) {
		require.Equal(t, game.West, directMove(w, game.Position{X: 1, Y: 1}, game.Position{X: 3, Y: 3}),
			"first legal move")
	})
}

func TestRandomAgent(t *testing.T) {
	t.Run("only plays legal moves", func(t *testing.T) {
		w := newWorld(t, 3, 3, game.Layout{
			Avatar: game.Position{X: 0, Y: 0},
			Pits:   []game.Position{{X: 1, Y: 0}},
		})
		a := NewRandomAgent(rand.New(rand.NewSource(4)))
		for i := 0; i < 20; i++ {
			d, _ := a.FindMove(w)
			require.True(t, slices.Contains(w.LegalActions(w.Avatar()), d))
		}
	})

	t.Run("stays when boxed in", func(t *testing.T) {
		w := newWorld(t, 2, 2, game.Layout{
			Avatar: game.Position{X: 0, Y: 0},
			Pits:   []game.Position{{X: 1, Y: 0}, {X: 0, Y: 1}},
		})
		d, _ := NewRandomAgent(rand.New(rand.NewSource(4))).FindMove(w)
		require.Equal(t, game.None, d)
	})
}
