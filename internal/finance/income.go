// Package finance contains the value records the forecasting core works on.
//
// All records are plain values. Functions in the core receive copies of them
// and return new copies, so callers may share them freely.
package finance

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Payout is a partial disbursement of the monthly salary on a day of the month.
type Payout struct {
	Day   int             `json:"day" example:"10"`    // Day of the month, 1 to 31
	Share decimal.Decimal `json:"share" example:"0.4"` // Share of the monthly salary, 0 to 1
}

// Salary is paid in two parts every month, the advance and the salary payment.
type Salary struct {
	MonthlyAmount     decimal.Decimal `json:"monthlyAmount" example:"100000"`
	AdvanceDay        int             `json:"advanceDay" example:"10"`
	AdvancePercentage decimal.Decimal `json:"advancePercentage" example:"40"`
	SalaryDay         int             `json:"salaryDay" example:"25"`
	SalaryPercentage  decimal.Decimal `json:"salaryPercentage" example:"60"`
}

// Payouts returns the advance and salary payouts.
func (s Salary) Payouts() []Payout {
	return []Payout{
		{Day: s.AdvanceDay, Share: s.AdvancePercentage.Div(hundred)},
		{Day: s.SalaryDay, Share: s.SalaryPercentage.Div(hundred)},
	}
}

// Income is a salary with the days it is paid out on.
type Income struct {
	ID       uuid.UUID
	Name     string
	Currency string
	Salary   *Salary
	Payouts  []Payout
}

// TotalMonthlyIncome is the steady-state monthly income.
//
// Bonuses are not part of it since they are one-time or not paid every month.
func (i Income) TotalMonthlyIncome() decimal.Decimal {
	if i.Salary == nil {
		return decimal.Zero
	}

	return i.Salary.MonthlyAmount
}

// EffectivePayouts returns the payouts of the income. If none are configured
// explicitly, the payouts of the salary are used.
func (i Income) EffectivePayouts() []Payout {
	if len(i.Payouts) > 0 || i.Salary == nil {
		return i.Payouts
	}

	return i.Salary.Payouts()
}
