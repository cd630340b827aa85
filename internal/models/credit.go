package models

import (
	"errors"
	"strings"

	"github.com/finassist/backend/internal/finance"
	"github.com/finassist/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Credit is a loan paid back in monthly installments.
type Credit struct {
	DefaultModel
	Name          string
	MonthlyAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Day           int
	EndDate       *types.Date // Date of the last installment. Credits without an end date run forever.
}

var (
	ErrCreditAmountNotPositive = errors.New("the monthly credit amount must be larger than zero")
	ErrCreditDayInvalid        = errors.New("the credit day must be between 1 and 31")
)

func (c *Credit) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	return nil
}

func (c *Credit) AfterSave(_ *gorm.DB) error {
	if !c.MonthlyAmount.IsPositive() {
		return ErrCreditAmountNotPositive
	}

	if !validDay(c.Day) {
		return ErrCreditDayInvalid
	}

	return nil
}

func (c Credit) Finance() finance.Credit {
	return finance.Credit{
		ID:            c.ID,
		Name:          c.Name,
		MonthlyAmount: c.MonthlyAmount,
		Day:           c.Day,
		EndDate:       c.EndDate,
	}
}
