package finance

import (
	"github.com/finassist/backend/internal/types"
	"github.com/shopspring/decimal"
)

const (
	SubgoalTickets       = "tickets"
	SubgoalAccommodation = "accommodation"
	SubgoalEntertainment = "entertainment"
)

// TravelSubgoal is one part of a travel goal. Subgoals are a read-only
// breakdown of the parent goal and are not forecast on their own.
type TravelSubgoal struct {
	Name       string          `json:"name" example:"tickets"`
	Amount     decimal.Decimal `json:"amount" example:"30000"`
	TargetDate types.Date      `json:"targetDate" example:"2025-06-01"`
}

// NewTravelSubgoals splits a trip into tickets, accommodation and entertainment.
//
// Each part is a third of the total. Tickets are due 90 days before the trip,
// accommodation 30 days before and entertainment on the trip date. No due date
// is earlier than today.
func NewTravelSubgoals(total decimal.Decimal, trip, today types.Date) []TravelSubgoal {
	third := total.Div(decimal.NewFromInt(3)).Round(2)

	due := func(daysBefore int) types.Date {
		d := trip.AddDays(-daysBefore)
		if d.Before(today) {
			return today
		}
		return d
	}

	return []TravelSubgoal{
		{Name: SubgoalTickets, Amount: third, TargetDate: due(90)},
		{Name: SubgoalAccommodation, Amount: third, TargetDate: due(30)},
		{Name: SubgoalEntertainment, Amount: total.Sub(third.Mul(decimal.NewFromInt(2))), TargetDate: due(0)},
	}
}
