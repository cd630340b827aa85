package models

import (
	"errors"
	"strings"

	"github.com/finassist/backend/internal/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is the set of monthly spending, booked once per month in forecasts.
type Expense struct {
	DefaultModel
	Name   string
	Day    *int            // Booking day in forecasts, defaults to the 1st
	Wallet decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Monthly allowance for day to day spending
	Items  []ExpenseItem   `gorm:"constraint:OnDelete:CASCADE"`
}

// ExpenseItem is a category or an additional expense of an Expense.
type ExpenseItem struct {
	DefaultModel
	ExpenseID  uuid.UUID
	Name       string
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Day        *int            // Day of month the category is paid on. Categories without a day are regular expenses.
	Additional bool            // Additional expenses never have a day
	Comment    string
}

var (
	ErrExpenseDayInvalid        = errors.New("expense days must be between 1 and 31")
	ErrExpenseWalletNegative    = errors.New("the wallet amount must not be negative")
	ErrExpenseItemAmountInvalid = errors.New("expense item amounts must not be negative")
	ErrAdditionalExpenseWithDay = errors.New("additional expenses can not have a day")
)

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	return nil
}

func (e *Expense) AfterSave(_ *gorm.DB) error {
	if e.Day != nil && !validDay(*e.Day) {
		return ErrExpenseDayInvalid
	}

	if e.Wallet.IsNegative() {
		return ErrExpenseWalletNegative
	}

	return nil
}

func (i *ExpenseItem) BeforeSave(_ *gorm.DB) error {
	i.Name = strings.TrimSpace(i.Name)
	i.Comment = strings.TrimSpace(i.Comment)
	return nil
}

func (i *ExpenseItem) AfterSave(_ *gorm.DB) error {
	if i.Amount.IsNegative() {
		return ErrExpenseItemAmountInvalid
	}

	if i.Day != nil && i.Additional {
		return ErrAdditionalExpenseWithDay
	}

	if i.Day != nil && !validDay(*i.Day) {
		return ErrExpenseDayInvalid
	}

	return nil
}

// Finance returns the expense as value record for the forecast core.
// Items need to be loaded.
func (e Expense) Finance() finance.Expense {
	out := finance.Expense{
		ID:     e.ID,
		Name:   e.Name,
		Day:    e.Day,
		Wallet: e.Wallet,
	}

	for _, item := range e.Items {
		if item.Additional {
			out.Additional = append(out.Additional, finance.AdditionalExpense{Name: item.Name, Amount: item.Amount, Comment: item.Comment})
			continue
		}

		out.Categories = append(out.Categories, finance.ExpenseCategory{Name: item.Name, Amount: item.Amount, Day: item.Day})
	}

	return out
}
