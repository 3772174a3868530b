package engine

import (
	"testing"

	gm "gosling-engine/goslingmg"
)

func parseFEN(t *testing.T, fen string) *gm.Board {
	t.Helper()
	b, err := gm.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN %q: %v", fen, err)
	}
	return b
}

// plainMinimax is a full-width reference search with no pruning and no move
// ordering, used to verify that alpha-beta and captures-first ordering never
// change the score at a given depth.
func plainMinimax(b *gm.Board, depth int) int32 {
	if depth <= 0 {
		return Evaluation(b)
	}
	moves := b.GenerateMoves()
	if len(moves) == 0 {
		if b.InCheck(b.SideToMove()) {
			if b.SideToMove() == gm.White {
				return -MateScore
			}
			return MateScore
		}
		return DrawScore
	}
	maximize := b.SideToMove() == gm.White
	best := MaxScore
	if maximize {
		best = -MaxScore
	}
	for _, m := range moves {
		captured := b.MakeMove(m)
		score := plainMinimax(b, depth-1)
		b.UnmakeMove(m, captured)
		if maximize && score > best || !maximize && score < best {
			best = score
		}
	}
	return best
}

func TestSearchDepthZeroReturnsStaticEval(t *testing.T) {
	fens := []string{
		gm.FENStartPos,
		"q6k/8/8/8/8/8/8/Q6K w - - 0 1",
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 0 1",
	}
	for _, fen := range fens {
		b := parseFEN(t, fen)
		result := Search(b, 0)
		if result.Score != Evaluation(b) {
			t.Fatalf("fen %q: got %d want %d", fen, result.Score, Evaluation(b))
		}
		if result.BestMove != gm.NoMove {
			t.Fatalf("fen %q: depth 0 returned a move: %s", fen, result.BestMove)
		}
	}
}

func TestSearchFindsHangingQueen(t *testing.T) {
	b := parseFEN(t, "q6k/8/8/8/8/8/8/Q6K w - - 0 1")
	result := Search(b, 1)
	if result.BestMove.String() != "a1a8" {
		t.Fatalf("best move: got %s want a1a8", result.BestMove)
	}
	if result.Score != 900 {
		t.Fatalf("score: got %d want %d", result.Score, 900)
	}

	// Mirrored: Black to move wins the white queen.
	b = parseFEN(t, "q6k/8/8/8/8/8/8/Q6K b - - 0 1")
	result = Search(b, 1)
	if result.BestMove.String() != "a8a1" {
		t.Fatalf("best move: got %s want a8a1", result.BestMove)
	}
	if result.Score != -900 {
		t.Fatalf("score: got %d want %d", result.Score, -900)
	}
}

func TestSearchFindsBackRankMate(t *testing.T) {
	// Ra8 is mate: the king is boxed in by its own pawns.
	b := parseFEN(t, "6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1")
	result := Search(b, 2)
	if result.BestMove.String() != "a1a8" {
		t.Fatalf("best move: got %s want a1a8", result.BestMove)
	}
	if result.Score != MateScore {
		t.Fatalf("score: got %d want %d", result.Score, MateScore)
	}
}

func TestCheckmatedPositionScoresAsLoss(t *testing.T) {
	// Fool's mate, White to move and mated.
	fen := "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 0 1"
	for _, depth := range []int{1, 2, 3} {
		b := parseFEN(t, fen)
		result := Search(b, depth)
		if result.Score != -MateScore {
			t.Fatalf("depth %d: score got %d want %d", depth, result.Score, -MateScore)
		}
		if result.BestMove != gm.NoMove {
			t.Fatalf("depth %d: mated position returned move %s", depth, result.BestMove)
		}
	}
}

func TestStalemateScoresZero(t *testing.T) {
	fen := "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	for _, depth := range []int{1, 2, 3} {
		b := parseFEN(t, fen)
		result := Search(b, depth)
		if result.Score != DrawScore {
			t.Fatalf("depth %d: score got %d want %d", depth, result.Score, DrawScore)
		}
		if result.BestMove != gm.NoMove {
			t.Fatalf("depth %d: stalemate returned move %s", depth, result.BestMove)
		}
	}
}

func TestSearchRestoresBoard(t *testing.T) {
	b := gm.NewGame()
	before := b.ToFEN()
	_ = Search(b, 3)
	if got := b.ToFEN(); got != before {
		t.Fatalf("search mutated the board: got %q want %q", got, before)
	}
}

// Pruning and ordering are performance heuristics only: the score at a
// fixed depth must equal the full-width minimax score.
func TestPruningDoesNotChangeScore(t *testing.T) {
	fens := []string{
		gm.FENStartPos,
		"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w - - 0 1",
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w - - 0 1",
		"8/2p5/3p4/1P5r/1R3p1k/8/4P1P1/K7 b - - 0 1",
	}
	for _, fen := range fens {
		for _, depth := range []int{1, 2, 3} {
			b := parseFEN(t, fen)
			got := Search(b, depth).Score
			want := plainMinimax(b, depth)
			if got != want {
				t.Fatalf("fen %q depth %d: alpha-beta %d, minimax %d", fen, depth, got, want)
			}
		}
	}
}

func TestNodeCountIsPerSearch(t *testing.T) {
	b := gm.NewGame()
	first := Search(b, 2)
	second := Search(b, 2)
	if first.Nodes == 0 {
		t.Fatalf("node count not recorded")
	}
	if first.Nodes != second.Nodes {
		t.Fatalf("repeated searches disagree: %d then %d nodes", first.Nodes, second.Nodes)
	}
	if Search(b, 0).Nodes != 1 {
		t.Fatalf("depth 0 search must count exactly the root node")
	}
}
