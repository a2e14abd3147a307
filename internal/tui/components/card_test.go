package components

import "testing"

func TestLayoutRowSumsToTotal(t *testing.T) {
	cases := []struct {
		total, n int
	}{
		{120, 4},
		{121, 4},
		{123, 4},
		{80, 3},
		{7, 2},
	}

	for _, c := range cases {
		widths := LayoutRow(c.total, c.n)
		if len(widths) != c.n {
			t.Fatalf("LayoutRow(%d, %d): got %d widths", c.total, c.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != c.total {
			t.Errorf("LayoutRow(%d, %d): widths sum to %d", c.total, c.n, sum)
		}
	}
}

func TestLayoutRowRemainderGoesFirst(t *testing.T) {
	widths := LayoutRow(10, 3)
	if widths[0] != 4 || widths[1] != 3 || widths[2] != 3 {
		t.Errorf("LayoutRow(10, 3) = %v, want [4 3 3]", widths)
	}
}

func TestTabIdxByKey(t *testing.T) {
	if idx := TabIdxByKey('m'); idx != 1 {
		t.Errorf("TabIdxByKey('m') = %d, want 1", idx)
	}
	if idx := TabIdxByKey('z'); idx != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", idx)
	}
}
