package finance

import (
	"github.com/finassist/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory is a fixed monthly amount. Categories without a day are
// regular expenses that do not have a fixed payment date.
type ExpenseCategory struct {
	Name   string
	Amount decimal.Decimal
	Day    *int
}

// Planned reports if the category is paid on a fixed day of the month.
func (c ExpenseCategory) Planned() bool {
	return c.Day != nil
}

// AdditionalExpense is a named ad-hoc monthly amount.
type AdditionalExpense struct {
	Name    string
	Amount  decimal.Decimal
	Comment string
}

// Expense is the set of monthly spending.
type Expense struct {
	ID         uuid.UUID
	Name       string
	Day        *int            // Day the expense is booked on in forecasts. Defaults to the 1st.
	Categories []ExpenseCategory
	Wallet     decimal.Decimal // Monthly allowance for day to day spending
	Additional []AdditionalExpense
}

// TotalMonthlyExpense is the sum of all categories, the wallet and all additional expenses.
func (e Expense) TotalMonthlyExpense() decimal.Decimal {
	total := e.Wallet
	for _, c := range e.Categories {
		total = total.Add(c.Amount)
	}

	for _, a := range e.Additional {
		total = total.Add(a.Amount)
	}

	return total
}

// BookingDay returns the day of the month the expense is booked on.
func (e Expense) BookingDay() int {
	if e.Day == nil {
		return 1
	}

	return *e.Day
}

// Credit is a recurring monthly debt payment.
type Credit struct {
	ID            uuid.UUID
	Name          string
	MonthlyAmount decimal.Decimal
	Day           int
	EndDate       *types.Date
}

// ActiveOn reports if the credit is still being paid on the date.
func (c Credit) ActiveOn(d types.Date) bool {
	return c.EndDate == nil || !d.After(*c.EndDate)
}
