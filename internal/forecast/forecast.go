// Package forecast simulates cash day by day to predict when goals and
// wishlist items are reached.
package forecast

import (
	"github.com/finassist/backend/internal/events"
	"github.com/finassist/backend/internal/finance"
	"github.com/finassist/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Input is everything a forecast run depends on.
type Input struct {
	Events            events.Calendar
	Goals             []finance.Goal
	WishlistItems     []finance.WishlistItem
	IncludeNiceToHave bool // Allocate to goals with niceToHave priority
	From              types.Date
	To                types.Date // Inclusive
	SkipEmergencyFund bool       // Do not allocate to the emergency fund in this run

	// Tracer receives a trace for every day on which money is allocated. Optional.
	Tracer Tracer
}

// Result is the outcome of a forecast run.
//
// Goals are sorted by allocation order, wishlist items by creation time.
// Their current and saved amounts are the simulated amounts at the end
// of the run.
type Result struct {
	Goals         []finance.Goal
	WishlistItems []finance.WishlistItem

	// Balance and Accrued hold the unallocated cash and the sum of all
	// positive daily net cash flows at the end of every simulated day.
	Balance map[types.Date]decimal.Decimal
	Accrued map[types.Date]decimal.Decimal

	// Days is the number of simulated days. It is lower than the window
	// length when all goals were achieved before its end.
	Days int
}

// Run simulates the window from in.From to in.To.
//
// Money is only allocated on days with an income or bonus event. Goals are
// served one after the other in allocation order, each up to its remaining
// amount, then wishlist items in the order they were created.
//
// The goals and wishlist items of the input are not modified.
func Run(in Input) Result {
	goals := prepareGoals(in.Goals, in.SkipEmergencyFund)
	wishlist := prepareWishlist(in.WishlistItems)

	estimate(goals, in.Events, in.From, in.To)

	s := simulation{
		goals:             goals,
		wishlist:          wishlist,
		includeNiceToHave: in.IncludeNiceToHave,
		tracer:            in.Tracer,
		cash:              decimal.Zero,
		accrued:           decimal.Zero,
	}

	result := Result{
		Balance: map[types.Date]decimal.Decimal{},
		Accrued: map[types.Date]decimal.Decimal{},
	}

	for date := in.From; !date.After(in.To); date = date.AddDays(1) {
		s.day(date, in.Events)

		result.Balance[date] = s.cash
		result.Accrued[date] = s.accrued
		result.Days++

		if s.allGoalsAchieved() {
			break
		}
	}

	result.Goals = s.goals
	result.WishlistItems = s.wishlist
	return result
}

// prepareGoals copies the goals, resets all forecast fields and sorts them in allocation order.
func prepareGoals(in []finance.Goal, skipEmergencyFund bool) []finance.Goal {
	goals := finance.CloneGoals(in)
	for i := range goals {
		goals[i].ForecastDate = nil
		goals[i].RequiredPerMonth = nil
		goals[i].ActualPerMonth = nil

		if skipEmergencyFund && goals[i].Type == finance.GoalEmergencyFund {
			goals[i].SkipInPeriod = true
		}
	}

	finance.SortGoals(goals)
	return goals
}

func prepareWishlist(in []finance.WishlistItem) []finance.WishlistItem {
	items := finance.CloneWishlist(in)
	for i := range items {
		items[i].ForecastDate = nil
	}

	finance.SortWishlist(items)
	return items
}
