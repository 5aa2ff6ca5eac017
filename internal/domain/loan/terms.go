package loan

// Terms is the repayment schedule derived from a loan application. Simple
// flat interest across the full term, not period-compounding.
type Terms struct {
	TotalPayable        float64 `json:"total_payable"`
	MonthlyAmortization float64 `json:"monthly_amortization"`
}

// ComputeTerms is pure and side-effect free, intended to be callable
// repeatedly for previews before a loan is committed.
//
//	totalPayable = amount × (1 + ratePercent/100 × termYears)
//	monthlyAmortization = totalPayable / (termYears × 12)
func ComputeTerms(amount, ratePercent float64, termYears int) (Terms, error) {
	if amount <= 0 || ratePercent < 0 || termYears <= 0 {
		return Terms{}, ErrInvalidAmount
	}
	total := amount * (1 + (ratePercent/100)*float64(termYears))
	return Terms{
		TotalPayable:        total,
		MonthlyAmortization: total / (float64(termYears) * 12),
	}, nil
}
