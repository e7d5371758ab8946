package count

import (
	"sort"
)

// DefaultBuckets bounds the counts ranked by bucket; anything at or above it
// falls back to a comparison sort. Real texts rarely have more than a few
// hundred words that frequent.
const DefaultBuckets = 1000

// Rank orders entries by descending count. Entries with equal counts keep their
// relative input order, so feeding it Trie.Entries yields alphabetical ties.
//
// Counts below buckets are placed by a stable counting sort in O(V + buckets).
// The residual (count >= buckets) is sorted with a stable comparison sort and
// put in front. residual is the size of that set. Counts must be
// non-negative.
func Rank(entries []Entry, buckets int) (ranked []Entry, residual int) {
	if buckets < 2 {
		buckets = 2
	}

	sizes := make([]int, buckets)
	var rest []Entry
	for _, e := range entries {
		if e.Info.Count < buckets {
			sizes[e.Info.Count]++
		} else {
			rest = append(rest, e)
		}
	}

	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].Info.Count > rest[j].Info.Count
	})

	// Turn sizes into start offsets, highest count first. Bucket 0 is always
	// empty since every indexed word was seen at least once.
	offsets := sizes
	pos := len(rest)
	for c := buckets - 1; c >= 0; c-- {
		n := sizes[c]
		offsets[c] = pos
		pos += n
	}

	ranked = make([]Entry, len(entries))
	copy(ranked, rest)
	for _, e := range entries {
		if c := e.Info.Count; c < buckets {
			ranked[offsets[c]] = e
			offsets[c]++
		}
	}

	return ranked, len(rest)
}
