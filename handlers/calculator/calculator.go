package calculator

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Parmjot23/mortgageHelper/utils"
)

type calculateInput struct {
	LoanAmount    float64 `json:"loanAmount"`
	InterestRate  float64 `json:"interestRate"`
	TermYears     int     `json:"termYears"`
	MonthlyIncome float64 `json:"monthlyIncome"`
	MonthlyDebts  float64 `json:"monthlyDebts"`
}

// Calculate returns the amortized monthly payment and debt service ratios for
// a prospective mortgage.
func Calculate(c *gin.Context) {
	var input calculateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if input.LoanAmount <= 0 || input.TermYears <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Loan amount and term must be positive"})
		return
	}
	if input.InterestRate < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Interest rate cannot be negative"})
		return
	}

	payment := utils.MonthlyPayment(input.LoanAmount, input.InterestRate, input.TermYears)
	gds, tds := utils.DebtServiceRatios(payment, input.MonthlyIncome, input.MonthlyDebts)

	c.JSON(http.StatusOK, gin.H{
		"monthlyPayment": payment,
		"totalPayments":  payment * float64(input.TermYears*12),
		"gdsRatio":       gds,
		"tdsRatio":       tds,
	})
}
