package numeric

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		name string
		v    int
		min  int
		max  int
		want int
	}{
		{name: "value in range", v: 3, min: 0, max: 6, want: 3},
		{name: "value below min", v: -1, min: 0, max: 6, want: 0},
		{name: "value above max", v: 9, min: 0, max: 6, want: 6},
		{name: "value equals min", v: 0, min: 0, max: 6, want: 0},
		{name: "value equals max", v: 6, min: 0, max: 6, want: 6},
		{name: "single value range", v: 5, min: 2, max: 2, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.v, tt.min, tt.max)
			if got != tt.want {
				t.Errorf("Clamp(%d, %d, %d) = %v, want %v", tt.v, tt.min, tt.max, got, tt.want)
			}
		})
	}
}
