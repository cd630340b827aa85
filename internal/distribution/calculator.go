// Package distribution splits the income of a pay period into obligations,
// savings and what is left over.
package distribution

import (
	"github.com/finassist/backend/internal/finance"
	"github.com/finassist/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Input is everything a distribution depends on.
type Input struct {
	Income               finance.Income
	Expense              finance.Expense
	Credits              []finance.Credit
	Goals                []finance.Goal
	EmergencyFundEnabled bool
	Period               Period
	Now                  types.Date // Selects the month and is the reference for credits and goal requirements
}

// Entry is a single expense in a bucket. Day is set for expenses paid on a
// fixed day of the month.
type Entry struct {
	Name   string          `json:"name" example:"Rent"`
	Amount decimal.Decimal `json:"amount" example:"30000"`
	Day    *int            `json:"day,omitempty" example:"12"`
}

// GoalAllocation is the amount set aside for a goal in the period.
type GoalAllocation struct {
	ID         uuid.UUID        `json:"id" example:"0d4ab0b4-2a4b-4e3c-9c38-9a2b8b3a4e21"`
	Name       string           `json:"name" example:"Vacation"`
	Priority   finance.Priority `json:"priority" example:"important"`
	TargetDate types.Date       `json:"targetDate" example:"2025-08-01"`
	Desired    decimal.Decimal  `json:"desired" example:"12000"` // The goal's monthly requirement scaled to the period
	Amount     decimal.Decimal  `json:"amount" example:"9000"`
}

// Result is the split of the period's income.
//
// Unless there is a deficit, TotalPlanned, TotalRegular, WalletTarget,
// EmergencyAmount, TotalGoals and Unexpected add up to PeriodIncome.
type Result struct {
	Period            Period          `json:"period" example:"advance"`
	Interval          Interval        `json:"interval"`
	DaysInPeriod      int             `json:"daysInPeriod" example:"15"`
	DaysInMonth       int             `json:"daysInMonth" example:"31"`
	PeriodIncome      decimal.Decimal `json:"periodIncome" example:"40000"`
	PeriodIncomeShare decimal.Decimal `json:"periodIncomeShare" example:"0.4"`

	Planned []Entry          `json:"planned"` // Expense categories paid on a day inside the period
	Credits []Entry          `json:"credits"` // Active credits paid on a day inside the period
	Regular []Entry          `json:"regular"` // Categories without a day, prorated by the income share
	Goals   []GoalAllocation `json:"goals"`

	MonthlyWallet   decimal.Decimal `json:"monthlyWallet" example:"20000"`
	TotalPlanned    decimal.Decimal `json:"totalPlanned" example:"30000"` // Includes credits
	TotalRegular    decimal.Decimal `json:"totalRegular" example:"6000"`
	WalletTarget    decimal.Decimal `json:"walletTarget" example:"9677.42"`
	EmergencyAmount decimal.Decimal `json:"emergencyAmount" example:"2000"`
	TotalGoals      decimal.Decimal `json:"totalGoals" example:"0"`
	Unexpected      decimal.Decimal `json:"unexpected" example:"0"`
	Capacity        decimal.Decimal `json:"capacity" example:"-7677.42"` // Income left for goals, negative if obligations exceed it
	Deficit         decimal.Decimal `json:"deficit" example:"7677.42"`
}

// Calculate distributes the income of the selected period.
//
// When obligations exceed the period income, goals get nothing. Otherwise
// every goal gets the same share of its desired amount, regardless of
// priority.
func Calculate(in Input) Result {
	period := in.Period
	if !period.Valid() {
		period = PeriodMonth
	}

	iv := interval(in.Income, period, in.Now)
	r := Result{
		Period:       period,
		Interval:     iv,
		DaysInPeriod: iv.Days(),
		DaysInMonth:  in.Now.LastDayOfMonth(),
		PeriodIncome: periodIncome(in.Income, period),
	}

	total := in.Income.TotalMonthlyIncome()
	r.PeriodIncomeShare = r.PeriodIncome.Div(decimal.Max(total, one))

	inPeriod := func(day int) bool {
		return containsDay(in.Income, period, day)
	}

	r.Planned = planned(in.Expense, inPeriod)
	r.Credits = credits(in.Credits, in.Now, inPeriod)
	r.Regular = regular(in.Expense, r.PeriodIncomeShare)

	r.TotalPlanned = sum(r.Planned).Add(sum(r.Credits))
	r.TotalRegular = sum(r.Regular)

	r.MonthlyWallet = decimal.Max(decimal.Zero, in.Expense.Wallet)
	r.WalletTarget = r.MonthlyWallet.Mul(decimal.NewFromInt(int64(r.DaysInPeriod))).Div(decimal.NewFromInt(int64(r.DaysInMonth)))

	r.EmergencyAmount = decimal.Zero
	if fund, ok := finance.EmergencyFund(in.Goals); in.EmergencyFundEnabled && ok {
		r.EmergencyAmount = fund.MonthlyRequirement(in.Now).Mul(r.PeriodIncomeShare)
	}

	r.Capacity = r.PeriodIncome.Sub(r.TotalPlanned).Sub(r.TotalRegular).Sub(r.WalletTarget).Sub(r.EmergencyAmount)
	r.Deficit = decimal.Max(decimal.Zero, r.Capacity.Neg())

	r.Goals = allocateGoals(in.Goals, in.Now, r.PeriodIncomeShare, r.Capacity)
	r.TotalGoals = decimal.Zero
	for _, g := range r.Goals {
		r.TotalGoals = r.TotalGoals.Add(g.Amount)
	}

	r.Unexpected = decimal.Zero
	if r.Capacity.IsPositive() {
		r.Unexpected = decimal.Max(decimal.Zero, r.Capacity.Sub(r.TotalGoals))
	}

	return r
}

// periodIncome returns the part of the monthly income paid out in the period.
func periodIncome(income finance.Income, period Period) decimal.Decimal {
	salary := income.Salary
	if salary == nil {
		return income.TotalMonthlyIncome()
	}

	switch period {
	case PeriodAdvance:
		return salary.MonthlyAmount.Mul(salary.AdvancePercentage).Div(hundred)
	case PeriodSalary:
		return salary.MonthlyAmount.Mul(salary.SalaryPercentage).Div(hundred)
	default:
		return income.TotalMonthlyIncome()
	}
}

func planned(expense finance.Expense, inPeriod func(int) bool) []Entry {
	entries := []Entry{}
	for _, c := range expense.Categories {
		if !c.Planned() || !c.Amount.IsPositive() || !inPeriod(*c.Day) {
			continue
		}

		day := *c.Day
		entries = append(entries, Entry{Name: c.Name, Amount: c.Amount, Day: &day})
	}

	sortByDay(entries)
	return entries
}

// credits returns the credits paid in the period that still run after now.
func credits(list []finance.Credit, now types.Date, inPeriod func(int) bool) []Entry {
	entries := []Entry{}
	for _, c := range list {
		if c.EndDate != nil && !c.EndDate.After(now) {
			continue
		}

		if !inPeriod(c.Day) {
			continue
		}

		day := c.Day
		entries = append(entries, Entry{Name: c.Name, Amount: c.MonthlyAmount, Day: &day})
	}

	sortByDay(entries)
	return entries
}

// regular returns the categories without a fixed day, prorated by the income
// share. Additional expenses belong to no bucket and stay in the capacity.
func regular(expense finance.Expense, share decimal.Decimal) []Entry {
	entries := []Entry{}
	for _, c := range expense.Categories {
		if c.Planned() || !c.Amount.IsPositive() {
			continue
		}

		entries = append(entries, Entry{Name: c.Name, Amount: c.Amount.Mul(share)})
	}

	return entries
}

// allocateGoals returns the allocations for all goals except the emergency
// fund and achieved goals, in allocation order.
func allocateGoals(goals []finance.Goal, now types.Date, share, capacity decimal.Decimal) []GoalAllocation {
	active := make([]finance.Goal, 0, len(goals))
	for _, g := range goals {
		if g.Type != finance.GoalEmergencyFund && !g.IsAchieved() {
			active = append(active, g)
		}
	}
	finance.SortGoals(active)

	allocations := make([]GoalAllocation, 0, len(active))
	desiredTotal := decimal.Zero
	for _, g := range active {
		desired := g.MonthlyRequirement(now).Mul(share)
		desiredTotal = desiredTotal.Add(desired)

		allocations = append(allocations, GoalAllocation{
			ID:         g.ID,
			Name:       g.Name,
			Priority:   g.Priority,
			TargetDate: g.TargetDate,
			Desired:    desired,
			Amount:     decimal.Zero,
		})
	}

	if !desiredTotal.IsPositive() {
		return allocations
	}

	allowed := decimal.Max(decimal.Zero, decimal.Min(capacity, desiredTotal))
	scale := allowed.Div(desiredTotal)
	for i := range allocations {
		allocations[i].Amount = allocations[i].Desired.Mul(scale)
	}

	return allocations
}

func sum(entries []Entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}

	return total
}

func sortByDay(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return *a.Day - *b.Day
	})
}
