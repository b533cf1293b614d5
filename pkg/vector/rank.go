package vector

import "sort"

// Candidate is a scored item considered by Rank.
type Candidate[T any] struct {
	Item      T
	Embedding []float32
}

// Scored is a Rank result.
type Scored[T any] struct {
	Item  T
	Score float64
}

// Rank scores every candidate against query and returns at most topN results
// with score >= 0, highest first. Ties keep the candidates' original order.
// Candidates that are not comparable with query are dropped.
func Rank[T any](query []float32, candidates []Candidate[T], topN int) []Scored[T] {
	if topN <= 0 || len(query) == 0 || len(candidates) == 0 {
		return []Scored[T]{}
	}

	scored := make([]Scored[T], 0, len(candidates))
	for _, c := range candidates {
		score, ok := Cosine(query, c.Embedding)
		if !ok || score < 0 {
			continue
		}
		scored = append(scored, Scored[T]{Item: c.Item, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > topN {
		scored = scored[:topN]
	}
	return scored
}
