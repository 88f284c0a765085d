package analyze

import (
	"go/types"
	"strings"
)

// minSuggestScore is the similarity a declared type name needs to be offered
// as a replacement for a missing one.
const minSuggestScore = 0.6

// suggestType returns the type name declared in scope that is closest to
// name, or "" if none is close enough.
func suggestType(scope *types.Scope, name string) string {
	var (
		best      string
		bestScore float64
	)

	for _, candidate := range scope.Names() {
		if _, ok := scope.Lookup(candidate).(*types.TypeName); !ok {
			continue
		}

		score := similarity(strings.ToLower(name), strings.ToLower(candidate))
		if score >= minSuggestScore && score > bestScore {
			best, bestScore = candidate, score
		}
	}

	return best
}

// similarity is 1 - levenshtein(a, b) / max(len(a), len(b)).
func similarity(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}

	return 1.0 - float64(levenshtein(a, b))/float64(max(len(a), len(b)))
}

// levenshtein computes the edit distance between two strings.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// keep a the shorter string; two rows suffice
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}
