package rank

import "testing"

func TestDenseDesc(t *testing.T) {
	tests := []struct {
		name string
		vals []float64
		want []int
	}{
		{"distinct", []float64{50, 5, 200}, []int{2, 3, 1}},
		{"ties share rank", []float64{50, 50, 5}, []int{1, 1, 2}},
		{"all equal", []float64{7, 7, 7}, []int{1, 1, 1}},
		{"single", []float64{3.14}, []int{1}},
		{"empty", []float64{}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DenseDesc(tt.vals)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("rank[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestByAverage(t *testing.T) {
	// Item 1 wins both signals, item 0 and 2 split the rest.
	videos := DenseDesc([]float64{5, 200, 50})
	subs := DenseDesc([]float64{100, 9000, 4000})

	order := ByAverage(3, videos, subs)

	want := []int{1, 2, 0}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestByAverage_StableOnTies(t *testing.T) {
	// Two items with identical signals keep their input order.
	a := DenseDesc([]float64{10, 10, 1})
	b := DenseDesc([]float64{3, 3, 9})

	order := ByAverage(3, a, b)

	if order[0] != 0 || order[1] != 1 {
		t.Errorf("tied items reordered: %v", order)
	}
}
