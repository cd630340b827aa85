package finance

import (
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// EmergencyFundMonths lists the supported sizes of the emergency fund in months of income.
var EmergencyFundMonths = []int{3, 6, 9, 12}

// EmergencyFundSettings configures the emergency fund goal.
type EmergencyFundSettings struct {
	Enabled           bool
	Months            int
	SkipCurrentPeriod bool
}

// DefaultEmergencyFundSettings returns the settings used when nothing is configured.
func DefaultEmergencyFundSettings() EmergencyFundSettings {
	return EmergencyFundSettings{Enabled: true, Months: 3}
}

// ValidMonths reports if the configured number of months is supported.
func (s EmergencyFundSettings) ValidMonths() bool {
	return slices.Contains(EmergencyFundMonths, s.Months)
}

// Target returns the amount the emergency fund should hold: the monthly
// income of all incomes times the configured number of months.
func (s EmergencyFundSettings) Target(incomes []Income) decimal.Decimal {
	total := decimal.Zero
	for _, i := range incomes {
		total = total.Add(i.TotalMonthlyIncome())
	}

	return total.Mul(decimal.NewFromInt(int64(s.Months)))
}

// EmergencyFund returns the first emergency fund goal that is not achieved yet.
func EmergencyFund(goals []Goal) (Goal, bool) {
	for _, g := range goals {
		if g.Type == GoalEmergencyFund && !g.IsAchieved() {
			return g, true
		}
	}

	return Goal{}, false
}
