package forecast

import (
	"github.com/finassist/backend/internal/events"
	"github.com/finassist/backend/internal/finance"
	"github.com/finassist/backend/internal/types"
	"github.com/shopspring/decimal"
)

// simulation is the state of a running forecast.
type simulation struct {
	goals             []finance.Goal
	wishlist          []finance.WishlistItem
	includeNiceToHave bool
	tracer            Tracer

	cash    decimal.Decimal
	accrued decimal.Decimal
}

// day books the events of the date and allocates the cash if money came in.
func (s *simulation) day(date types.Date, calendar events.Calendar) {
	totals := calendar.Totals(date)
	net := totals.Net()

	s.cash = s.cash.Add(net)
	if net.IsPositive() {
		s.accrued = s.accrued.Add(net)
	}

	if !calendar.HasInflow(date) {
		return
	}

	before := s.cash
	goals := s.allocateGoals(date)
	wishlist := s.allocateWishlist(date)

	if s.tracer != nil {
		s.tracer.Trace(DayTrace{
			Date:          date,
			Incomes:       totals.Incomes,
			Bonuses:       totals.Bonuses,
			Outflows:      totals.Outflows,
			BalanceBefore: before,
			BalanceAfter:  s.cash,
			Goals:         goals,
			Wishlist:      wishlist,
		})
	}
}

// eligible reports if the goal takes part in allocation.
func (s *simulation) eligible(g finance.Goal) bool {
	if g.IsAchieved() || g.SkipInPeriod {
		return false
	}

	return g.Priority != finance.PriorityNiceToHave || s.includeNiceToHave
}

// allocateGoals hands out cash to the goals in allocation order. Each goal
// is filled completely before the next one gets anything.
func (s *simulation) allocateGoals(date types.Date) []Allocation {
	var allocations []Allocation

	for i := range s.goals {
		if !s.cash.IsPositive() {
			break
		}

		g := &s.goals[i]
		if !s.eligible(*g) {
			continue
		}

		amount := decimal.Min(s.cash, g.Remaining())
		g.CurrentAmount = g.CurrentAmount.Add(amount)
		s.cash = s.cash.Sub(amount)

		reached := g.IsAchieved() && g.ForecastDate == nil
		if reached {
			d := date
			g.ForecastDate = &d
		}

		allocations = append(allocations, Allocation{ID: g.ID, Name: g.Name, Amount: amount, Reached: reached})
	}

	return allocations
}

// allocateWishlist hands out the cash left after the goals to the wishlist,
// oldest item first.
func (s *simulation) allocateWishlist(date types.Date) []Allocation {
	var allocations []Allocation

	for i := range s.wishlist {
		if !s.cash.IsPositive() {
			break
		}

		item := &s.wishlist[i]
		remaining := item.Remaining()
		if !remaining.IsPositive() {
			continue
		}

		amount := decimal.Min(s.cash, remaining)
		item.Saved = item.Saved.Add(amount)
		s.cash = s.cash.Sub(amount)

		reached := item.IsFunded() && item.ForecastDate == nil
		if reached {
			d := date
			item.ForecastDate = &d
		}

		allocations = append(allocations, Allocation{ID: item.ID, Name: item.Name, Amount: amount, Reached: reached})
	}

	return allocations
}

// allGoalsAchieved reports if there is at least one goal and all goals are achieved.
func (s *simulation) allGoalsAchieved() bool {
	if len(s.goals) == 0 {
		return false
	}

	for _, g := range s.goals {
		if !g.IsAchieved() {
			return false
		}
	}

	return true
}
