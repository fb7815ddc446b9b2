package models

// AssignRankings recomputes the ranking field over movies ordered
// rating-ascending: the last (highest rated) movie gets rank 1, the
// first gets rank len(movies). An empty slice is a no-op.
func AssignRankings(movies []*Movie) {
	count := len(movies)
	for i := range movies {
		r := count - i
		movies[i].Ranking = &r
	}
}
