package models

import (
	"errors"
	"strings"

	"github.com/finassist/backend/internal/finance"
	"github.com/finassist/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WishlistItem is a purchase saved for once all goals are served.
// Older items are served first.
type WishlistItem struct {
	DefaultModel
	Name         string
	Note         string
	Amount       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Saved        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ForecastDate *types.Date     // Written by the forecast refresh
}

var (
	ErrWishlistAmountNotPositive = errors.New("wishlist item amounts must be larger than zero")
	ErrWishlistSavedNegative     = errors.New("the saved amount must not be negative")
)

func (w *WishlistItem) BeforeSave(_ *gorm.DB) error {
	w.Name = strings.TrimSpace(w.Name)
	w.Note = strings.TrimSpace(w.Note)
	return nil
}

func (w *WishlistItem) AfterSave(_ *gorm.DB) error {
	if !w.Amount.IsPositive() {
		return ErrWishlistAmountNotPositive
	}

	if w.Saved.IsNegative() {
		return ErrWishlistSavedNegative
	}

	return nil
}

func (w WishlistItem) Finance() finance.WishlistItem {
	return finance.WishlistItem{
		ID:           w.ID,
		Name:         w.Name,
		Note:         w.Note,
		Amount:       w.Amount,
		Saved:        w.Saved,
		CreatedAt:    w.CreatedAt,
		ForecastDate: w.ForecastDate,
	}
}
