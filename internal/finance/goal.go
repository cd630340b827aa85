package finance

import (
	"github.com/finassist/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Priority decides the order in which goals receive money.
type Priority string

const (
	PriorityCritical   Priority = "critical"
	PriorityImportant  Priority = "important"
	PriorityNiceToHave Priority = "niceToHave"
)

// Rank returns the position of the priority in allocation order.
// Unknown priorities are served last.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityImportant:
		return 1
	case PriorityNiceToHave:
		return 2
	default:
		return 999
	}
}

// Valid reports if p is one of the known priorities.
func (p Priority) Valid() bool {
	return p.Rank() != 999
}

type GoalType string

const (
	GoalRegular       GoalType = "regular"
	GoalEmergencyFund GoalType = "emergencyFund"
	GoalTravel        GoalType = "travel"
)

// Valid reports if t is one of the known goal types.
func (t GoalType) Valid() bool {
	return t == GoalRegular || t == GoalEmergencyFund || t == GoalTravel
}

var thirtyDays = decimal.NewFromInt(30)

// Goal is something to save money for until a target date.
type Goal struct {
	ID            uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    types.Date
	Priority      Priority
	Type          GoalType
	SkipInPeriod  bool // Do not save for this goal in the current period

	// Set by forecasts, nil until computed
	RequiredPerMonth *decimal.Decimal
	ActualPerMonth   *decimal.Decimal
	ForecastDate     *types.Date

	TravelSubgoals []TravelSubgoal
}

// IsAchieved reports if the target amount has been saved.
func (g Goal) IsAchieved() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// Remaining returns the amount still missing to reach the target, never less than zero.
func (g Goal) Remaining() decimal.Decimal {
	return decimal.Max(decimal.Zero, g.TargetAmount.Sub(g.CurrentAmount))
}

// Progress returns the saved share of the target between 0 and 1.
func (g Goal) Progress() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}

	return decimal.Min(g.CurrentAmount.Div(g.TargetAmount), decimal.NewFromInt(1))
}

// IsOverdue reports if the goal is forecast to be reached after its target date.
func (g Goal) IsOverdue() bool {
	return g.ForecastDate != nil && g.ForecastDate.After(g.TargetDate)
}

// MonthlyRequirement returns how much needs to be saved per month starting on
// from to reach the target on the target date.
//
// Months are counted as 30 days and there is always at least one month left.
func (g Goal) MonthlyRequirement(from types.Date) decimal.Decimal {
	remaining := g.Remaining()
	if !remaining.IsPositive() {
		return decimal.Zero
	}

	months := decimal.NewFromInt(int64(from.DaysUntil(g.TargetDate))).Div(thirtyDays)
	return remaining.Div(decimal.Max(decimal.NewFromInt(1), months))
}

// CompareGoals orders goals by priority, then by target date.
func CompareGoals(a, b Goal) int {
	if a.Priority.Rank() != b.Priority.Rank() {
		return a.Priority.Rank() - b.Priority.Rank()
	}

	return a.TargetDate.Compare(b.TargetDate)
}

// SortGoals sorts goals in allocation order. Goals that compare equal keep
// their relative order.
func SortGoals(goals []Goal) {
	slices.SortStableFunc(goals, CompareGoals)
}

// CloneGoals returns a copy of goals that shares no pointers with the input.
func CloneGoals(goals []Goal) []Goal {
	out := make([]Goal, len(goals))
	for i, g := range goals {
		out[i] = g.clone()
	}

	return out
}

func (g Goal) clone() Goal {
	if g.RequiredPerMonth != nil {
		v := *g.RequiredPerMonth
		g.RequiredPerMonth = &v
	}

	if g.ActualPerMonth != nil {
		v := *g.ActualPerMonth
		g.ActualPerMonth = &v
	}

	if g.ForecastDate != nil {
		v := *g.ForecastDate
		g.ForecastDate = &v
	}

	g.TravelSubgoals = slices.Clone(g.TravelSubgoals)
	return g
}
