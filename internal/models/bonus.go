package models

import (
	"errors"
	"strings"

	"github.com/finassist/backend/internal/finance"
	"github.com/finassist/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bonus is income paid in addition to the salary, once or periodically.
type Bonus struct {
	DefaultModel
	Name   string
	Amount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Type   finance.BonusType
	Date   *types.Date // Payment date of one-time bonuses
	Period finance.BonusPeriod
	Start  *types.Date // First payment of recurring bonuses
	End    *types.Date // Last possible payment of recurring bonuses. Optional.
}

var (
	ErrBonusAmountNotPositive = errors.New("the bonus amount must be larger than zero")
	ErrBonusTypeInvalid       = errors.New("the bonus type must be one of 'oneTime' or 'recurring'")
	ErrBonusDateMissing       = errors.New("one-time bonuses need a date")
	ErrBonusPeriodInvalid     = errors.New("recurring bonuses need a period of 'month', 'quarter' or 'year'")
	ErrBonusStartMissing      = errors.New("recurring bonuses need a start date")
	ErrBonusEndBeforeStart    = errors.New("the end date of a bonus must not be before its start date")
)

func (b *Bonus) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	return nil
}

func (b *Bonus) AfterSave(_ *gorm.DB) error {
	if !b.Amount.IsPositive() {
		return ErrBonusAmountNotPositive
	}

	switch b.Type {
	case finance.BonusOneTime:
		if b.Date == nil {
			return ErrBonusDateMissing
		}

	case finance.BonusRecurring:
		if b.Period != finance.BonusMonthly && b.Period != finance.BonusQuarterly && b.Period != finance.BonusYearly {
			return ErrBonusPeriodInvalid
		}

		if b.Start == nil {
			return ErrBonusStartMissing
		}

		if b.End != nil && b.End.Before(*b.Start) {
			return ErrBonusEndBeforeStart
		}

	default:
		return ErrBonusTypeInvalid
	}

	return nil
}

func (b Bonus) Finance() finance.Bonus {
	return finance.Bonus{
		ID:     b.ID,
		Name:   b.Name,
		Amount: b.Amount,
		Type:   b.Type,
		Date:   b.Date,
		Period: b.Period,
		Start:  b.Start,
		End:    b.End,
	}
}
