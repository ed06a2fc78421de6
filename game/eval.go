package game

const kingWeight = 2.0

// Evaluate tallies material (kings count double) to produce a score between
// -1 and 1 from the perspective of the given color
func Evaluate(b *Board, c Color) float64 {
	mine := material(b, c)
	theirs := material(b, c.Opponent())
	return normalize(mine, theirs)
}

func material(b *Board, c Color) float64 {
	men := float64(b.CountPieces(NewPiece(c, false)))
	kings := float64(b.CountPieces(NewPiece(c, true)))
	return men + kingWeight*kings
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
