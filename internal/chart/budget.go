package chart

// HomeBudget is the fixed breakdown of where each rupee of the Union Budget goes.
func HomeBudget() *Doughnut {
	d, _ := New("Where the rupee goes",
		[]string{"Interest Payments", "States Share", "Schemes", "Defence", "Subsidies"},
		[]float64{20, 22, 16, 8, 6},
		[]string{"#e74c3c", "#3498db", "#1abc9c", "#2c3e50", "#f1c40f"},
	)
	return d
}

// SIPSplit charts a SIP projection as invested amount against wealth gained.
func SIPSplit(invested, profit float64) *Doughnut {
	d, _ := New("",
		[]string{"Invested Amount", "Wealth Gained"},
		[]float64{invested, profit},
		[]string{"#0984e3", "#00cec9"},
	)
	return d
}
