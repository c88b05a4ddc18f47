package calc

import "math"

// SIP is the projection of a monthly systematic investment.
type SIP struct {
	Invested    float64
	FutureValue float64
	Profit      float64
}

// ProjectSIP computes the future value of a monthly contribution p at an
// annual rate (percent) over years, contributions at the start of each month.
func ProjectSIP(p, rate, years float64) (SIP, bool) {
	if !present(p, rate, years) || !nonNegative(p, years) {
		return SIP{}, false
	}
	i := rate / 1200
	months := years * 12
	invested := p * months
	fv := p * (math.Pow(1+i, months) - 1) * (1 + i) / i
	return SIP{Invested: invested, FutureValue: fv, Profit: fv - invested}, true
}
