package stats

import (
	"cmp"
	"slices"
	"strings"
)

// DefaultTopK limits the category ranking.
const DefaultTopK = 20

// CategoryCount is a number of occurrences of a value.
type CategoryCount struct {
	Value string `json:"value" yaml:"value"`
	Count int    `json:"count" yaml:"count"`
}

// TopK splits every value on sep and ranks distinct tokens by the number
// of occurrences, most frequent first. Tokens with equal counts keep the
// order in which they were first seen. Empty tokens are skipped. The
// result is truncated to k, k < 1 keeps all tokens.
func TopK(values []string, sep string, k int) []CategoryCount {
	idx := make(map[string]int)
	var res []CategoryCount

	for _, v := range values {
		if v == "" {
			continue
		}
		for _, tok := range strings.Split(v, sep) {
			if tok == "" {
				continue
			}
			if i, ok := idx[tok]; ok {
				res[i].Count++
				continue
			}
			idx[tok] = len(res)
			res = append(res, CategoryCount{Value: tok, Count: 1})
		}
	}

	slices.SortStableFunc(res, func(a, b CategoryCount) int {
		return cmp.Compare(b.Count, a.Count)
	})

	if k > 0 && len(res) > k {
		res = res[:k]
	}
	return res
}
