package goslingmg_test

import (
	"testing"

	gm "gosling-engine/goslingmg"
)

// helper: parse empty board
func emptyBoard(t *testing.T) *gm.Board {
	t.Helper()
	b, err := gm.ParseFEN("8/8/8/8/8/8/8/8 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN empty: %v", err)
	}
	return b
}

func sq(t *testing.T, name string) gm.Square {
	t.Helper()
	m, err := gm.ParseMove(name + name)
	if err != nil {
		t.Fatalf("bad square %q: %v", name, err)
	}
	return m.From()
}

func TestNewGameSetup(t *testing.T) {
	b := gm.NewGame()

	if b.SideToMove() != gm.White {
		t.Fatalf("side to move: got %v want White", b.SideToMove())
	}
	checks := []struct {
		square string
		want   gm.Piece
	}{
		{"a1", gm.WhiteRook}, {"b1", gm.WhiteKnight}, {"c1", gm.WhiteBishop},
		{"d1", gm.WhiteQueen}, {"e1", gm.WhiteKing}, {"f1", gm.WhiteBishop},
		{"g1", gm.WhiteKnight}, {"h1", gm.WhiteRook},
		{"e2", gm.WhitePawn}, {"a2", gm.WhitePawn},
		{"e4", gm.NoPiece}, {"d5", gm.NoPiece},
		{"e7", gm.BlackPawn}, {"h7", gm.BlackPawn},
		{"a8", gm.BlackRook}, {"d8", gm.BlackQueen}, {"e8", gm.BlackKing},
	}
	for _, c := range checks {
		if got := b.PieceAt(sq(t, c.square)); got != c.want {
			t.Fatalf("%s: got piece %v want %v", c.square, got, c.want)
		}
	}
}

func TestNewGameMatchesStartposFEN(t *testing.T) {
	b := gm.NewGame()
	parsed, err := gm.ParseFEN(gm.FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN startpos: %v", err)
	}
	for s := gm.Square(0); s < 64; s++ {
		if b.PieceAt(s) != parsed.PieceAt(s) {
			t.Fatalf("square %s: NewGame %v, ParseFEN %v", s, b.PieceAt(s), parsed.PieceAt(s))
		}
	}
	if parsed.SideToMove() != b.SideToMove() {
		t.Fatalf("side to move mismatch")
	}
}

func TestToFENRoundTrip(t *testing.T) {
	const want = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"
	if got := gm.NewGame().ToFEN(); got != want {
		t.Fatalf("ToFEN: got %q want %q", got, want)
	}

	fens := []string{
		"8/2p5/3p4/1P5r/1R3p1k/8/4P1P1/K7 b - - 0 1",
		"4k3/8/4b3/8/8/8/4R3/4K3 b - - 0 1",
	}
	for _, fen := range fens {
		b, err := gm.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN %q: %v", fen, err)
		}
		b2, err := gm.ParseFEN(b.ToFEN())
		if err != nil {
			t.Fatalf("re-parse %q: %v", b.ToFEN(), err)
		}
		for s := gm.Square(0); s < 64; s++ {
			if b.PieceAt(s) != b2.PieceAt(s) {
				t.Fatalf("fen %q square %s changed across round trip", fen, s)
			}
		}
	}
}

func TestParseFENRejectsGarbage(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w", // 7 ranks
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w - - 0 1", // bad piece
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x - - 0 1", // bad side
		"9/8/8/8/8/8/8/8 w - - 0 1",                             // rank too wide
	}
	for _, fen := range bad {
		if _, err := gm.ParseFEN(fen); err == nil {
			t.Fatalf("ParseFEN(%q): expected error", fen)
		}
	}
}

func TestSquareHelpers(t *testing.T) {
	if got := gm.SquareAt(0, 0); got.String() != "a1" {
		t.Fatalf("SquareAt(0,0): got %s want a1", got)
	}
	if got := gm.SquareAt(7, 7); got.String() != "h8" {
		t.Fatalf("SquareAt(7,7): got %s want h8", got)
	}
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {-2, 9}} {
		if got := gm.SquareAt(rc[0], rc[1]); got != gm.NoSquare {
			t.Fatalf("SquareAt(%d,%d): got %v want NoSquare", rc[0], rc[1], got)
		}
	}
	e4 := sq(t, "e4")
	if e4.Rank() != 3 || e4.File() != 4 {
		t.Fatalf("e4: rank %d file %d", e4.Rank(), e4.File())
	}
}

func TestTerminalStateQueries(t *testing.T) {
	// Fool's mate: White to move, checkmated.
	mated, err := gm.ParseFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !mated.InCheckmate() {
		t.Fatalf("expected checkmate")
	}
	if mated.InStalemate() {
		t.Fatalf("did not expect stalemate")
	}

	// Classic queen stalemate: Black to move, no moves, not in check.
	stale, err := gm.ParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !stale.InStalemate() {
		t.Fatalf("expected stalemate")
	}
	if stale.InCheckmate() {
		t.Fatalf("did not expect checkmate")
	}

	start := gm.NewGame()
	if start.InCheckmate() || start.InStalemate() || !start.HasLegalMoves() {
		t.Fatalf("initial position misclassified as terminal")
	}
}

func TestPieceTypeAndColor(t *testing.T) {
	if gm.BlackQueen.Type() != gm.PieceTypeQueen || gm.BlackQueen.Color() != gm.Black {
		t.Fatalf("BlackQueen decoded wrong")
	}
	if gm.WhitePawn.Type() != gm.PieceTypePawn || gm.WhitePawn.Color() != gm.White {
		t.Fatalf("WhitePawn decoded wrong")
	}
	if got := gm.PieceFromType(gm.Black, gm.PieceTypeKnight); got != gm.BlackKnight {
		t.Fatalf("PieceFromType(Black, Knight): got %v", got)
	}
	if got := gm.PieceFromType(gm.White, gm.PieceTypeNone); got != gm.NoPiece {
		t.Fatalf("PieceFromType(White, None): got %v", got)
	}
}
