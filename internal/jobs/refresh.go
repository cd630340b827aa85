package jobs

import (
	"fmt"

	"github.com/finassist/backend/internal/metrics"
	"github.com/finassist/backend/internal/models"
	"github.com/finassist/backend/internal/types"
	"gorm.io/gorm"
)

// Refresh runs a forecast over the stored records and writes the derived
// fields back: forecast dates and the monthly amounts of goals and the
// forecast dates of wishlist items.
//
// Simulated amounts are never written back.
type Refresh struct {
	DB           *gorm.DB
	HorizonYears int

	// Today returns the first day of the forecast. Defaults to types.Today.
	Today func() types.Date
}

func (r Refresh) Name() string {
	return "forecast-refresh"
}

func (r Refresh) Run() (err error) {
	defer func() {
		metrics.ObserveRefresh(err)
	}()

	today := types.Today()
	if r.Today != nil {
		today = r.Today()
	}

	plan, err := models.LoadPlan(r.DB)
	if err != nil {
		return err
	}

	result := plan.Forecast(today, today.AddMonths(12*r.HorizonYears), nil)

	return r.DB.Transaction(func(tx *gorm.DB) error {
		for _, g := range result.Goals {
			// Columns are updated directly since the derived
			// fields are not validated
			err := tx.Model(&models.Goal{}).Where("id = ?", g.ID).UpdateColumns(map[string]any{
				"forecast_date":      g.ForecastDate,
				"required_per_month": g.RequiredPerMonth,
				"actual_per_month":   g.ActualPerMonth,
			}).Error
			if err != nil {
				return fmt.Errorf("updating goal %s: %w", g.ID, err)
			}
		}

		for _, w := range result.WishlistItems {
			err := tx.Model(&models.WishlistItem{}).Where("id = ?", w.ID).UpdateColumn("forecast_date", w.ForecastDate).Error
			if err != nil {
				return fmt.Errorf("updating wishlist item %s: %w", w.ID, err)
			}
		}

		return nil
	})
}
