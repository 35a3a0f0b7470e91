package rank

import "sort"

// DenseDesc assigns dense ranks to vals with 1 for the highest value.
// Equal values share a rank and the next distinct value gets the next
// consecutive rank (50, 50, 5 → 1, 1, 2).
func DenseDesc(vals []float64) []int {
	distinct := make([]float64, 0, len(vals))
	seen := make(map[float64]struct{}, len(vals))
	for _, v := range vals {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			distinct = append(distinct, v)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(distinct)))

	rankOf := make(map[float64]int, len(distinct))
	for i, v := range distinct {
		rankOf[v] = i + 1
	}

	ranks := make([]int, len(vals))
	for i, v := range vals {
		ranks[i] = rankOf[v]
	}
	return ranks
}

// ByAverage orders item indices 0..n-1 by ascending average rank across the
// given rank slices. The sort is stable, so ties keep their input order.
// Each rank slice must have length n.
func ByAverage(n int, rankSets ...[]int) []int {
	avg := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum int
		for _, ranks := range rankSets {
			sum += ranks[i]
		}
		avg[i] = float64(sum) / float64(len(rankSets))
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return avg[order[a]] < avg[order[b]]
	})
	return order
}
