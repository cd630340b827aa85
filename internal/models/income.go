package models

import (
	"errors"
	"strings"

	"github.com/finassist/backend/internal/finance"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// Income is a salary paid out as an advance and a salary payment every month.
type Income struct {
	DefaultModel
	Name              string          `gorm:"uniqueIndex"`
	Currency          string          // ISO 4217 code. Informational only, amounts are never converted.
	MonthlyAmount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	AdvanceDay        int
	AdvancePercentage decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	SalaryDay         int
	SalaryPercentage  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

var (
	ErrIncomeNameNotUnique     = errors.New("the income name must be unique")
	ErrIncomeAmountNegative    = errors.New("the monthly amount must not be negative")
	ErrPayoutDayInvalid        = errors.New("payout days must be between 1 and 31")
	ErrPayoutPercentageInvalid = errors.New("the advance and salary percentages must not be negative and must add up to 100")
	ErrIncomeCurrencyInvalid   = errors.New("the currency must be an ISO 4217 currency code")
)

var hundred = decimal.NewFromInt(100)

func (i *Income) BeforeSave(_ *gorm.DB) error {
	i.Name = strings.TrimSpace(i.Name)
	i.Currency = strings.ToUpper(strings.TrimSpace(i.Currency))
	return nil
}

func (i *Income) AfterSave(_ *gorm.DB) error {
	if i.MonthlyAmount.IsNegative() {
		return ErrIncomeAmountNegative
	}

	if !validDay(i.AdvanceDay) || !validDay(i.SalaryDay) {
		return ErrPayoutDayInvalid
	}

	if i.AdvancePercentage.IsNegative() || i.SalaryPercentage.IsNegative() || !i.AdvancePercentage.Add(i.SalaryPercentage).Equal(hundred) {
		return ErrPayoutPercentageInvalid
	}

	if i.Currency != "" {
		if _, err := currency.ParseISO(i.Currency); err != nil {
			return ErrIncomeCurrencyInvalid
		}
	}

	return nil
}

func validDay(day int) bool {
	return day >= 1 && day <= 31
}

// Finance returns the income as value record for the forecast core.
func (i Income) Finance() finance.Income {
	return finance.Income{
		ID:       i.ID,
		Name:     i.Name,
		Currency: i.Currency,
		Salary: &finance.Salary{
			MonthlyAmount:     i.MonthlyAmount,
			AdvanceDay:        i.AdvanceDay,
			AdvancePercentage: i.AdvancePercentage,
			SalaryDay:         i.SalaryDay,
			SalaryPercentage:  i.SalaryPercentage,
		},
	}
}
