package components

import (
	"strings"
	"testing"
)

func TestProgressBarCells(t *testing.T) {
	tests := []struct {
		percent     float64
		width       int
		filled, all int
	}{
		{0, 20, 0, 20},
		{50, 20, 10, 20},
		{66.67, 30, 20, 30},
		{100, 20, 20, 20},
		{140, 20, 20, 20},
		{-5, 20, 0, 20},
		{50, 1, 2, 4}, // minimum width
	}
	for _, tt := range tests {
		filled, empty := NewProgressBar("", tt.percent, false, tt.width).Cells()
		if filled != tt.filled || filled+empty != tt.all {
			t.Errorf("Cells(%v, %d) = %d, %d; want %d filled of %d",
				tt.percent, tt.width, filled, empty, tt.filled, tt.all)
		}
	}
}

func TestProgressBarViewShowsPercent(t *testing.T) {
	got := NewProgressBar("Level 2", 42, true, 10).View()
	if !strings.Contains(got, "42%") {
		t.Errorf("View() = %q, want it to contain 42%%", got)
	}
	if !strings.Contains(got, "Level 2") {
		t.Errorf("View() = %q, want it to contain the label", got)
	}
}
