package finance

import (
	"github.com/finassist/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BonusType string

const (
	BonusOneTime   BonusType = "oneTime"
	BonusRecurring BonusType = "recurring"
)

type BonusPeriod string

const (
	BonusMonthly   BonusPeriod = "month"
	BonusQuarterly BonusPeriod = "quarter"
	BonusYearly    BonusPeriod = "year"
)

// Bonus is income paid in addition to the salary.
//
// One-time bonuses are paid on Date. Recurring bonuses are paid every Period,
// anchored on the day of Start, from Start until End.
type Bonus struct {
	ID     uuid.UUID
	Name   string
	Amount decimal.Decimal
	Type   BonusType
	Date   *types.Date
	Period BonusPeriod
	Start  *types.Date
	End    *types.Date
}
