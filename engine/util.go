package engine

// Max32 returns the larger of x or y.
func Max32(x, y int32) int32 {
	if x > y {
		return x
	}
	return y
}

// Min32 returns the smaller of x or y.
func Min32(x, y int32) int32 {
	if x < y {
		return x
	}
	return y
}
