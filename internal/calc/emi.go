package calc

import "math"

// EMI is the equated monthly installment of a loan of principal p at an
// annual rate (percent) repaid over months.
func EMI(p, rate, months float64) (float64, bool) {
	r := rate / 1200
	if !present(p, r, months) || !nonNegative(p, months) {
		return 0, false
	}
	f := math.Pow(1+r, months)
	return p * r * f / (f - 1), true
}
