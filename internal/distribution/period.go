package distribution

import (
	"fmt"

	"github.com/finassist/backend/internal/finance"
	"github.com/finassist/backend/internal/types"
)

// Period selects the part of the month income is distributed for.
type Period string

const (
	PeriodMonth   Period = "month"   // The whole calendar month
	PeriodAdvance Period = "advance" // From the advance payout to the salary payout
	PeriodSalary  Period = "salary"  // From the salary payout to the next advance payout
)

var ErrPeriodInvalid = fmt.Errorf("period must be one of %q, %q or %q", PeriodMonth, PeriodAdvance, PeriodSalary)

// ParsePeriod parses a period. An empty string selects the whole month.
func ParsePeriod(s string) (Period, error) {
	if s == "" {
		return PeriodMonth, nil
	}

	p := Period(s)
	if !p.Valid() {
		return "", ErrPeriodInvalid
	}

	return p, nil
}

func (p Period) Valid() bool {
	return p == PeriodMonth || p == PeriodAdvance || p == PeriodSalary
}

// Interval is a range of days. Start is inclusive, End is exclusive.
type Interval struct {
	Start types.Date `json:"start" example:"2025-01-10"`
	End   types.Date `json:"end" example:"2025-01-25"`
}

// Days returns the number of days in the interval, at least 1.
func (i Interval) Days() int {
	return max(1, i.Start.DaysUntil(i.End))
}

// payoutDays returns the first and last day of month of the period. ok is
// false when the period is not bounded by payouts.
func payoutDays(income finance.Income, period Period) (start, end int, ok bool) {
	salary := income.Salary
	if salary == nil || !validDay(salary.AdvanceDay) || !validDay(salary.SalaryDay) {
		return 0, 0, false
	}

	switch period {
	case PeriodAdvance:
		return salary.AdvanceDay, salary.SalaryDay, true
	case PeriodSalary:
		return salary.SalaryDay, salary.AdvanceDay, true
	}

	return 0, 0, false
}

func validDay(day int) bool {
	return day >= 1 && day <= 31
}

// interval returns the dates the period covers in the month of now.
//
// A half period that starts after the day its end falls on continues into
// the next month. Periods that cannot be resolved cover the whole month.
func interval(income finance.Income, period Period, now types.Date) Interval {
	month := now.CalendarMonth()
	next := month.AddDate(0, 1)
	whole := Interval{Start: month.First(), End: next.First()}

	startDay, endDay, ok := payoutDays(income, period)
	if !ok {
		return whole
	}

	start := month.Date(startDay)
	end := month.Date(endDay)
	if !end.After(start) {
		end = next.Date(endDay)
	}

	return Interval{Start: start, End: end}
}

// containsDay reports if a day of month falls into the period. For periods
// that wrap into the next month, days after the start and days before the
// end both belong to it.
func containsDay(income finance.Income, period Period, day int) bool {
	start, end, ok := payoutDays(income, period)
	if !ok {
		return true
	}

	if start < end {
		return day >= start && day < end
	}

	return day >= start || day < end
}
