package finance

import (
	"time"

	"github.com/finassist/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// WishlistItem is a purchase that is saved for after all goals are served.
type WishlistItem struct {
	ID           uuid.UUID
	Name         string
	Note         string
	Amount       decimal.Decimal
	Saved        decimal.Decimal
	CreatedAt    time.Time // Older items are served first
	ForecastDate *types.Date
}

// Remaining returns the amount still missing, never less than zero.
func (w WishlistItem) Remaining() decimal.Decimal {
	return decimal.Max(decimal.Zero, w.Amount.Sub(w.Saved))
}

// IsFunded reports if the full amount has been saved.
func (w WishlistItem) IsFunded() bool {
	return w.Saved.GreaterThanOrEqual(w.Amount)
}

// SortWishlist sorts items by creation time, oldest first.
func SortWishlist(items []WishlistItem) {
	slices.SortStableFunc(items, func(a, b WishlistItem) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
}

// CloneWishlist returns a copy of items that shares no pointers with the input.
func CloneWishlist(items []WishlistItem) []WishlistItem {
	out := make([]WishlistItem, len(items))
	for i, item := range items {
		if item.ForecastDate != nil {
			d := *item.ForecastDate
			item.ForecastDate = &d
		}
		out[i] = item
	}

	return out
}
