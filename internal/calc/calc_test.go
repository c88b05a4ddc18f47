package calc

import (
	"math"
	"testing"
)

const tolerance = 0.01

func assertClose(t *testing.T, expected, actual float64, description string) {
	t.Helper()
	if math.Abs(expected-actual) > tolerance {
		t.Errorf("%s: expected %.2f, got %.2f (diff: %.4f)", description, expected, actual, actual-expected)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"5000", 5000},
		{" 12.5 ", 12.5},
		{"1,00,000", 100000},
	}
	for _, tc := range tests {
		assertClose(t, tc.want, Parse(tc.in), "Parse("+tc.in+")")
	}
	for _, in := range []string{"", "abc", "12abc"} {
		if !math.IsNaN(Parse(in)) {
			t.Errorf("Parse(%q) = %v, want NaN", in, Parse(in))
		}
	}
}

func TestProjectSIP_Scenario(t *testing.T) {
	got, ok := ProjectSIP(5000, 12, 10)
	if !ok {
		t.Fatal("ProjectSIP(5000, 12, 10) not ok")
	}
	assertClose(t, 600000, got.Invested, "invested")
	i := 0.01
	want := 5000 * (math.Pow(1+i, 120) - 1) * (1 + i) / i
	assertClose(t, want, got.FutureValue, "future value")
	assertClose(t, 1161695.38, got.FutureValue, "future value literal")
	assertClose(t, got.FutureValue, got.Invested+got.Profit, "invested + profit")
}

func TestProjectSIP_Reconstructs(t *testing.T) {
	for _, p := range []float64{100, 5000, 25000} {
		for _, r := range []float64{1, 7.5, 12, 18} {
			for _, n := range []float64{1, 5, 10, 30} {
				got, ok := ProjectSIP(p, r, n)
				if !ok {
					t.Fatalf("ProjectSIP(%v, %v, %v) not ok", p, r, n)
				}
				if math.Abs(got.Invested+got.Profit-got.FutureValue) > 1e-6*got.FutureValue {
					t.Errorf("ProjectSIP(%v, %v, %v): invested+profit = %v, fv = %v", p, r, n, got.Invested+got.Profit, got.FutureValue)
				}
				if got.FutureValue < got.Invested {
					t.Errorf("ProjectSIP(%v, %v, %v): fv %v below invested %v", p, r, n, got.FutureValue, got.Invested)
				}
			}
		}
	}
}

func TestProjectSIP_Guard(t *testing.T) {
	tests := []struct {
		name    string
		p, r, n float64
	}{
		{"zero amount", 0, 12, 10},
		{"zero rate", 5000, 0, 10},
		{"zero years", 5000, 12, 0},
		{"missing amount", math.NaN(), 12, 10},
		{"missing rate", 5000, Parse(""), 10},
		{"negative amount", -5000, 12, 10},
		{"negative years", 5000, 12, -10},
	}
	for _, tc := range tests {
		if _, ok := ProjectSIP(tc.p, tc.r, tc.n); ok {
			t.Errorf("%s: expected skip", tc.name)
		}
	}
}

func TestEMI(t *testing.T) {
	got, ok := EMI(100000, 12, 12)
	if !ok {
		t.Fatal("EMI not ok")
	}
	assertClose(t, 8884.88, got, "EMI(100000, 12%, 12)")
}

func TestEMI_RepaysAtLeastPrincipal(t *testing.T) {
	for _, p := range []float64{1000, 500000, 7500000} {
		for _, r := range []float64{0.5, 8.5, 14, 36} {
			for _, n := range []float64{1, 12, 240, 360} {
				emi, ok := EMI(p, r, n)
				if !ok {
					t.Fatalf("EMI(%v, %v, %v) not ok", p, r, n)
				}
				if emi*n < p {
					t.Errorf("EMI(%v, %v, %v) = %v repays %v < principal", p, r, n, emi, emi*n)
				}
			}
		}
	}
}

func TestEMI_Guard(t *testing.T) {
	if _, ok := EMI(500000, 0, 240); ok {
		t.Error("zero rate should skip")
	}
	if _, ok := EMI(0, 8.5, 240); ok {
		t.Error("zero principal should skip")
	}
	if _, ok := EMI(500000, 8.5, math.NaN()); ok {
		t.Error("missing term should skip")
	}
	if _, ok := EMI(-500000, 8.5, 240); ok {
		t.Error("negative principal should skip")
	}
	if _, ok := EMI(500000, 8.5, -240); ok {
		t.Error("negative term should skip")
	}
}

func TestNegativeRate(t *testing.T) {
	sip, ok := ProjectSIP(5000, -5, 10)
	if !ok {
		t.Fatal("a negative return is still a projection")
	}
	if sip.Profit >= 0 || sip.FutureValue >= sip.Invested {
		t.Errorf("ProjectSIP(5000, -5%%, 10) = %+v", sip)
	}
	assertClose(t, sip.FutureValue, sip.Invested+sip.Profit, "invested + profit")
	if emi, ok := EMI(120000, -6, 12); !ok || emi >= 10000 {
		t.Errorf("EMI(120000, -6%%, 12) = %v, %v", emi, ok)
	}
}
