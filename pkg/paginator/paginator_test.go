package paginator

import "testing"

func TestClampLimit(t *testing.T) {
	cases := []struct {
		name string
		in   int
		want int
	}{
		{"negative becomes min", -5, MinLimit},
		{"zero becomes min", 0, MinLimit},
		{"one stays", 1, 1},
		{"in range stays", 20, 20},
		{"max stays", MaxLimit, MaxLimit},
		{"oversized clamps to max", 200, MaxLimit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampLimit(tc.in); got != tc.want {
				t.Errorf("ClampLimit(%d) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}
