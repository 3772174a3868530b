package goslingmg

// MakeMove applies a move to the board unconditionally and returns the
// contents of the destination square before the move (NoPiece for a quiet
// move). The captured piece is the only state needed to undo: together with
// the move it makes UnmakeMove an exact inverse. Legality is the caller's
// concern (see GenerateMoves).
func (b *Board) MakeMove(m Move) (captured Piece) {
	from, to := m.From(), m.To()
	captured = b.pieces[to]
	b.pieces[to] = b.pieces[from]
	b.pieces[from] = NoPiece
	b.sideToMove = b.sideToMove.Opposite()
	return captured
}

// UnmakeMove restores the position as it was before MakeMove(m) returned
// 'captured'. Apply-then-undo is a bit-for-bit identity.
func (b *Board) UnmakeMove(m Move, captured Piece) {
	from, to := m.From(), m.To()
	b.pieces[from] = b.pieces[to]
	b.pieces[to] = captured
	b.sideToMove = b.sideToMove.Opposite()
}

// Apply plays a move and returns an undo closure. The closure must run on
// every path, including early aborts, so that the board always reflects the
// path from the root to the current node.
func (b *Board) Apply(m Move) func() {
	captured := b.MakeMove(m)
	return func() { b.UnmakeMove(m, captured) }
}
