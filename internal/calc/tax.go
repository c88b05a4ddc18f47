package calc

// Slab is one bracket of a regime. Income above Above is taxed as
// (taxable - Offset) * Rate + Fixed.
type Slab struct {
	Above  float64 `yaml:"above"`
	Offset float64 `yaml:"offset"`
	Rate   float64 `yaml:"rate"`
	Fixed  float64 `yaml:"fixed"`
	Note   string  `yaml:"note,omitempty"`
}

// Regime is one deduction/bracket structure a filer may choose.
// Slabs are ordered from the highest threshold down.
type Regime struct {
	Name        string  `yaml:"name"`
	Deduction   float64 `yaml:"deduction"`
	RebateLimit float64 `yaml:"rebate_limit"`
	Slabs       []Slab  `yaml:"slabs"`
}

// Tax returns the tax due on a gross income under r.
func (r Regime) Tax(income float64) float64 {
	taxable := income - r.Deduction
	if taxable <= r.RebateLimit {
		return 0
	}
	for _, s := range r.Slabs {
		if taxable > s.Above {
			return (taxable-s.Offset)*s.Rate + s.Fixed
		}
	}
	return 0
}

// Comparison is the tax due under each regime for one income.
type Comparison struct {
	Income float64
	Taxes  []RegimeTax
}

// RegimeTax pairs a regime name with the tax it computes.
type RegimeTax struct {
	Regime string
	Tax    float64
}

// CompareTax evaluates income under every regime, in order. A missing
// income counts as zero.
func CompareTax(income float64, regimes []Regime) Comparison {
	if !present(income) {
		income = 0
	}
	c := Comparison{Income: income}
	for _, r := range regimes {
		c.Taxes = append(c.Taxes, RegimeTax{Regime: r.Name, Tax: r.Tax(income)})
	}
	return c
}
