package forecast

import (
	"github.com/finassist/backend/internal/events"
	"github.com/finassist/backend/internal/finance"
	"github.com/finassist/backend/internal/types"
	"github.com/shopspring/decimal"
)

var (
	one        = decimal.NewFromInt(1)
	thirtyDays = decimal.NewFromInt(30)
)

// FreePerMonth returns the average net cash flow per month of all events
// between from and to, both inclusive. Months are counted as 30 days.
func FreePerMonth(calendar events.Calendar, from, to types.Date) decimal.Decimal {
	total := decimal.Zero
	for date := range calendar {
		if date.Before(from) || date.After(to) {
			continue
		}

		total = total.Add(calendar.Net(date))
	}

	days := max(1, from.DaysUntil(to))
	months := decimal.NewFromInt(int64(days)).Div(thirtyDays)

	return total.Div(decimal.Max(one, months))
}

// estimate sets the required and actual monthly amounts of the goals.
// goals must be sorted in allocation order.
//
// The actual amount is what the goal would get if the average free cash
// of the window was handed out in allocation order every month. It is
// informational and does not influence the simulation.
func estimate(goals []finance.Goal, calendar events.Calendar, from, to types.Date) {
	budget := FreePerMonth(calendar, from, to)

	for i := range goals {
		required := goals[i].MonthlyRequirement(from)
		goals[i].RequiredPerMonth = &required

		actual := decimal.Zero
		if !goals[i].IsAchieved() && !goals[i].SkipInPeriod {
			actual = decimal.Min(required, decimal.Max(decimal.Zero, budget))
			budget = budget.Sub(actual)
		}

		goals[i].ActualPerMonth = &actual
	}
}
