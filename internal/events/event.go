// Package events materializes recurring income and spending into a dated
// calendar of cash events.
package events

import (
	"github.com/finassist/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Type string

const (
	TypeIncome  Type = "income"
	TypeBonus   Type = "bonus"
	TypeExpense Type = "expense"
	TypeCredit  Type = "credit"
)

// Inflow reports if events of the type add money.
func (t Type) Inflow() bool {
	return t == TypeIncome || t == TypeBonus
}

// Event is a single movement of cash on a day.
type Event struct {
	Date        types.Date      `json:"date" example:"2025-01-10"`
	Type        Type            `json:"type" example:"income"`
	Amount      decimal.Decimal `json:"amount" example:"40000"` // Always positive, the type decides the direction
	SourceID    uuid.UUID       `json:"sourceId" example:"4e2c1bb0-61b6-4b3a-9e0e-13f2e5d7a1c4"`
	Description string          `json:"description" example:"Salary"`
}

// Calendar holds the events of every day that has at least one.
type Calendar map[types.Date][]Event

// On returns the events of a day.
func (c Calendar) On(d types.Date) []Event {
	return c[d]
}

// Dates returns all days with events in ascending order.
func (c Calendar) Dates() []types.Date {
	dates := maps.Keys(c)
	slices.SortFunc(dates, types.Date.Compare)
	return dates
}

// HasInflow reports if there is an income or bonus event on the day.
func (c Calendar) HasInflow(d types.Date) bool {
	return slices.ContainsFunc(c[d], func(e Event) bool {
		return e.Type.Inflow()
	})
}

// DayTotals sums the events of a day by direction.
type DayTotals struct {
	Incomes  decimal.Decimal
	Bonuses  decimal.Decimal
	Outflows decimal.Decimal // Expenses and credits
}

// Net returns incomes and bonuses minus outflows.
func (t DayTotals) Net() decimal.Decimal {
	return t.Incomes.Add(t.Bonuses).Sub(t.Outflows)
}

// Totals returns the sums of the day's events.
func (c Calendar) Totals(d types.Date) DayTotals {
	totals := DayTotals{}
	for _, e := range c[d] {
		switch e.Type {
		case TypeIncome:
			totals.Incomes = totals.Incomes.Add(e.Amount)
		case TypeBonus:
			totals.Bonuses = totals.Bonuses.Add(e.Amount)
		case TypeExpense, TypeCredit:
			totals.Outflows = totals.Outflows.Add(e.Amount)
		}
	}

	return totals
}

// Net returns the net cash flow of the day.
func (c Calendar) Net(d types.Date) decimal.Decimal {
	return c.Totals(d).Net()
}
