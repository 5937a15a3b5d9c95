package textrun

import "testing"

func TestColumns(t *testing.T) {
	tests := []struct {
		r    rune
		want int
		zero bool
	}{
		{'A', 1, false},
		{' ', 1, false},
		{'中', 2, false},
		{'한', 2, false},
		{'Ａ', 2, false},
		{'\u0301', 0, true},
		{'\u0308', 0, true},
		{0, 0, false},
	}

	for _, tt := range tests {
		if got := columns(tt.r); got != tt.want {
			t.Errorf("columns(%U) = %d, want %d", tt.r, got, tt.want)
		}
		if got := IsZeroWidth(tt.r); got != tt.zero {
			t.Errorf("IsZeroWidth(%U) = %v, want %v", tt.r, got, tt.zero)
		}
	}
}
