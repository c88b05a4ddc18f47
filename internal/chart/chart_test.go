package chart

import (
	"math"
	"strings"
	"testing"
)

func TestNewMismatch(t *testing.T) {
	if _, err := New("x", []string{"a"}, []float64{1, 2}, []string{"#fff"}); err == nil {
		t.Error("New() with mismatched lengths should fail")
	}
}

func TestHomeBudget(t *testing.T) {
	d := HomeBudget()
	if len(d.Slices) != 5 {
		t.Fatalf("got %d slices", len(d.Slices))
	}
	if d.Total() != 72 {
		t.Errorf("Total() = %v, want 72", d.Total())
	}
	var sum float64
	for _, s := range d.Shares() {
		sum += s
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Errorf("shares sum to %v", sum)
	}
	out := d.Render(40)
	for _, label := range []string{"Interest Payments", "States Share", "Schemes", "Defence", "Subsidies"} {
		if !strings.Contains(out, label) {
			t.Errorf("Render() missing %q", label)
		}
	}
}

func TestApportion(t *testing.T) {
	tests := []struct {
		shares []float64
		width  int
	}{
		{[]float64{50, 50}, 10},
		{[]float64{33.3, 33.3, 33.4}, 20},
		{[]float64{20 / 72.0 * 100, 22 / 72.0 * 100, 16 / 72.0 * 100, 8 / 72.0 * 100, 6 / 72.0 * 100}, 37},
	}
	for _, tc := range tests {
		cells := apportion(tc.shares, tc.width)
		n := 0
		for _, c := range cells {
			n += c
		}
		if n != tc.width {
			t.Errorf("apportion(%v, %d) = %v sums to %d", tc.shares, tc.width, cells, n)
		}
	}
	if cells := apportion([]float64{0, 0}, 10); cells[0]+cells[1] != 0 {
		t.Errorf("empty chart should draw nothing, got %v", cells)
	}
}

func TestNegativeSlice(t *testing.T) {
	// a SIP at a negative return loses money
	d := SIPSplit(600000, -210000)
	shares := d.Shares()
	if shares[0] != 100 || shares[1] != 0 {
		t.Errorf("Shares() = %v, want [100 0]", shares)
	}
	out := d.Render(20)
	if !strings.Contains(out, strings.Repeat("█", 20)) || !strings.Contains(out, "Wealth Gained") {
		t.Errorf("Render() =\n%s", out)
	}
	if cells := apportion([]float64{120, -20}, 10); cells[0] != 10 || cells[1] != 0 {
		t.Errorf("apportion with a negative share = %v", cells)
	}
}

func TestCanvasReplace(t *testing.T) {
	var c Canvas
	if c.Current() != nil || c.View(20) != "" {
		t.Error("new canvas should be empty")
	}
	first := SIPSplit(600000, 561695.38)
	c.Replace(first)
	second := SIPSplit(120000, 10000)
	c.Replace(second)
	if c.Current() != second {
		t.Error("Replace() did not swap the chart")
	}
	if c.Drawn() != 2 {
		t.Errorf("Drawn() = %d", c.Drawn())
	}
	vals := c.Current().Values()
	if vals[0] != 120000 || vals[1] != 10000 {
		t.Errorf("Values() = %v", vals)
	}
}
