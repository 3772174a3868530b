package goslingmg

// Perft counts the leaf positions reachable in exactly 'depth' plies of
// legal play. It is the correctness oracle for move generation: any
// deviation from a reference count indicates a generation or legality
// defect. Depth 0 counts the current position itself.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GenerateMoves() {
		captured := b.MakeMove(m)
		nodes += Perft(b, depth-1)
		b.UnmakeMove(m, captured)
	}
	return nodes
}

// PerftDivide splits the perft count across the root moves, mapping each
// legal root move to the node count of its subtree. The values sum to
// Perft(b, depth).
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	div := make(map[Move]uint64)
	if depth <= 0 {
		return div
	}
	for _, m := range b.GenerateMoves() {
		captured := b.MakeMove(m)
		div[m] = Perft(b, depth-1)
		b.UnmakeMove(m, captured)
	}
	return div
}
