package events

import (
	"github.com/finassist/backend/internal/finance"
	"github.com/finassist/backend/internal/types"
)

const defaultExpenseDescription = "Expense"

// Sources are the records events are generated from.
type Sources struct {
	Incomes  []finance.Income
	Bonuses  []finance.Bonus
	Expenses []finance.Expense
	Credits  []finance.Credit
}

// Build returns the events for every day from from to to, both inclusive.
//
// Day-of-month anchors that do not exist in a month fire on its last day,
// so a payment on the 31st is booked on the 28th in February.
func Build(sources Sources, from, to types.Date) Calendar {
	calendar := Calendar{}

	for date := from; !date.After(to); date = date.AddDays(1) {
		var day []Event

		for _, income := range sources.Incomes {
			day = append(day, incomeEvents(income, date)...)
		}

		for _, bonus := range sources.Bonuses {
			if bonusDue(bonus, date) {
				day = append(day, Event{Date: date, Type: TypeBonus, Amount: bonus.Amount, SourceID: bonus.ID, Description: bonus.Name})
			}
		}

		for _, expense := range sources.Expenses {
			total := expense.TotalMonthlyExpense()
			if total.IsPositive() && date.Day() == date.ClampDay(expense.BookingDay()) {
				description := expense.Name
				if description == "" {
					description = defaultExpenseDescription
				}
				day = append(day, Event{Date: date, Type: TypeExpense, Amount: total, SourceID: expense.ID, Description: description})
			}
		}

		for _, credit := range sources.Credits {
			if credit.ActiveOn(date) && date.Day() == date.ClampDay(credit.Day) {
				day = append(day, Event{Date: date, Type: TypeCredit, Amount: credit.MonthlyAmount, SourceID: credit.ID, Description: credit.Name})
			}
		}

		if len(day) > 0 {
			calendar[date] = day
		}
	}

	return calendar
}

func incomeEvents(income finance.Income, date types.Date) []Event {
	var out []Event
	for _, payout := range income.EffectivePayouts() {
		if date.Day() != date.ClampDay(payout.Day) {
			continue
		}

		out = append(out, Event{
			Date:        date,
			Type:        TypeIncome,
			Amount:      income.TotalMonthlyIncome().Mul(payout.Share),
			SourceID:    income.ID,
			Description: income.Name,
		})
	}

	return out
}

// bonusDue reports if the bonus is paid out on the date.
func bonusDue(bonus finance.Bonus, date types.Date) bool {
	switch bonus.Type {
	case finance.BonusOneTime:
		return bonus.Date != nil && bonus.Date.Equal(date)

	case finance.BonusRecurring:
		if bonus.Start == nil || date.Before(*bonus.Start) {
			return false
		}

		if bonus.End != nil && date.After(*bonus.End) {
			return false
		}

		start := *bonus.Start
		if date.Day() != date.ClampDay(start.Day()) {
			return false
		}

		months := (date.Year()-start.Year())*12 + int(date.Month()) - int(start.Month())
		switch bonus.Period {
		case finance.BonusMonthly:
			return true
		case finance.BonusQuarterly:
			return months%3 == 0
		case finance.BonusYearly:
			return months%12 == 0
		}
	}

	return false
}
