package engine

import (
	gm "gosling-engine/goslingmg"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	// MaxScore bounds the alpha-beta window; it exceeds every reachable score.
	MaxScore int32 = 10000000
	// MateScore is the magnitude assigned to a checkmated side-to-move.
	MateScore int32 = 999999
	DrawScore int32 = 0
)

// Result carries the outcome of a search: the score from White's
// perspective, the move that achieved it, and the number of nodes visited.
// BestMove is NoMove at a terminal node (no legal moves) and at depth 0.
type Result struct {
	Score    int32
	BestMove gm.Move
	Nodes    uint64
}

// searchInfo threads instrumentation through the recursion so that repeated
// searches stay independent of each other.
type searchInfo struct {
	nodes uint64
}

// Search runs a fixed-depth full-width alpha-beta search and returns the
// score together with the move that achieved it. The board is mutated
// during the search but restored exactly before Search returns.
func Search(b *gm.Board, depth int) Result {
	var info searchInfo
	score, best := alphabeta(b, depth, -MaxScore, MaxScore, &info)
	return Result{Score: score, BestMove: best, Nodes: info.nodes}
}

// alphabeta is a minimax search with alpha-beta pruning: White maximizes,
// Black minimizes. Every make is paired with an unmake on all paths,
// including beta cutoffs, so the board at each call reflects exactly the
// path from the root.
func alphabeta(b *gm.Board, depth int, alpha, beta int32, info *searchInfo) (int32, gm.Move) {
	info.nodes++

	if depth <= 0 {
		return Evaluation(b), gm.NoMove
	}

	moves := b.GenerateMoves()
	if len(moves) == 0 {
		// Checkmate or stalemate. A mated side to move scores as a loss
		// for that side; stalemate is a dead draw.
		if b.InCheck(b.SideToMove()) {
			if b.SideToMove() == gm.White {
				return -MateScore, gm.NoMove
			}
			return MateScore, gm.NoMove
		}
		return DrawScore, gm.NoMove
	}

	orderMoves(b, moves)

	var best gm.Move
	if b.SideToMove() == gm.White {
		value := -MaxScore
		for _, m := range moves {
			captured := b.MakeMove(m)
			score, _ := alphabeta(b, depth-1, alpha, beta, info)
			b.UnmakeMove(m, captured)
			if score > value {
				value = score
				best = m
			}
			alpha = Max32(alpha, value)
			if alpha >= beta {
				break
			}
		}
		return value, best
	}

	value := MaxScore
	for _, m := range moves {
		captured := b.MakeMove(m)
		score, _ := alphabeta(b, depth-1, alpha, beta, info)
		b.UnmakeMove(m, captured)
		if score < value {
			value = score
			best = m
		}
		beta = Min32(beta, value)
		if alpha >= beta {
			break
		}
	}
	return value, best
}
