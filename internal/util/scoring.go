package util

import "github.com/sahilm/fuzzy"

// Rank returns the indexes of candidates that fuzzy-match input, best first.
// An empty input keeps every candidate in its original order.
func Rank(input string, candidates []string) []int {
	if input == "" {
		out := make([]int, len(candidates))
		for i := range candidates {
			out[i] = i
		}
		return out
	}
	matches := fuzzy.Find(input, candidates)
	out := make([]int, len(matches))
	for i, m := range matches {
		out[i] = m.Index
	}
	return out
}

// ScoreCompletions returns the top n matches for input from candidates.
// n <= 0 returns every match.
func ScoreCompletions(input string, candidates []string, n int) []string {
	idx := Rank(input, candidates)
	if len(idx) == 0 {
		return nil
	}
	limit := n
	if n <= 0 || len(idx) < limit {
		limit = len(idx)
	}
	out := make([]string, limit)
	for i := 0; i < limit; i++ {
		out[i] = candidates[idx[i]]
	}
	return out
}
