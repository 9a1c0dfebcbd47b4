package utils

import "math"

// MonthlyPayment computes the closed-form amortized payment for a loan.
// A zero rate degenerates to straight-line repayment.
func MonthlyPayment(principal float64, annualRate float64, termYears int) float64 {
	if principal <= 0 || termYears <= 0 {
		return 0
	}

	numPayments := float64(termYears * 12)
	monthlyRate := annualRate / 100 / 12
	if monthlyRate == 0 {
		return principal / numPayments
	}

	factor := math.Pow(1+monthlyRate, numPayments)
	return principal * (monthlyRate * factor) / (factor - 1)
}

// DebtServiceRatios returns the GDS and TDS affordability ratios as
// percentages of monthly income. Zero income yields zero ratios.
func DebtServiceRatios(monthlyPayment, monthlyIncome, monthlyDebts float64) (gds float64, tds float64) {
	if monthlyIncome <= 0 {
		return 0, 0
	}

	gds = (monthlyPayment / monthlyIncome) * 100
	tds = ((monthlyPayment + monthlyDebts) / monthlyIncome) * 100
	return gds, tds
}
