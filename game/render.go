package game

import "strings"

// Render draws the board with the top row first:
// A avatar, W wumpus, P pit, G gold, . empty.
func (w *World) Render() string {
	var sb strings.Builder
	for y := w.maxY; y >= 0; y-- {
		for x := 0; x <= w.maxX; x++ {
			sb.WriteByte(w.glyph(Position{X: x, Y: y}))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (w *World) glyph(p Position) byte {
	switch {
	case w.avatar == p:
		return 'A'
	case w.IsHazard(p):
		return 'W'
	case w.IsObstacle(p):
		return 'P'
	}
	for _, g := range w.gold {
		if g == p {
			return 'G'
		}
	}
	return '.'
}
