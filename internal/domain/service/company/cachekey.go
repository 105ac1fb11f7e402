package company

import (
	"fmt"
	"hash/fnv"
	"sort"
)

// scorecardKey derives a cache key from the company id and a deterministic
// hash of the scores snapshot, so a stale cached scorecard can never be
// served for edited scores.
func scorecardKey(id string, scores map[string]float64) string {
	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Strings(names)

	h := fnv.New64a()
	for _, name := range names {
		fmt.Fprintf(h, "%s=%g;", name, scores[name])
	}

	return fmt.Sprintf("scorecard:%s:%x", id, h.Sum64())
}
