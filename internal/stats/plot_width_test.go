package stats

import "testing"

func TestPlotWidthFor(t *testing.T) {
	cases := []struct {
		total int
		want  int
	}{
		{total: 0, want: minPlotWidth},
		{total: 5, want: minPlotWidth},
		{total: 80, want: 80 - 7},
		{total: 120, want: 120 - 7},
	}
	for _, tc := range cases {
		if got := PlotWidthFor(tc.total); got != tc.want {
			t.Fatalf("PlotWidthFor(%d) = %d, want %d", tc.total, got, tc.want)
		}
	}
}
