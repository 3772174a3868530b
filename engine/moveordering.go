package engine

import (
	"golang.org/x/exp/slices"

	gm "gosling-engine/goslingmg"
)

// orderMoves sorts captures before quiet moves, in place. This is purely a
// pruning heuristic: it tightens the alpha-beta window sooner but never
// changes the score at a given depth. The sort is stable so that ties keep
// generation order, which is what makes "first move wins" deterministic.
func orderMoves(b *gm.Board, moves []gm.Move) {
	slices.SortStableFunc(moves, func(x, y gm.Move) bool {
		return moveClass(b, x) < moveClass(b, y)
	})
}

// moveClass ranks a move for ordering: captures 0, quiets 1.
func moveClass(b *gm.Board, m gm.Move) int {
	if b.PieceAt(m.To()) != gm.NoPiece {
		return 0
	}
	return 1
}
