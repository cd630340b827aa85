package models

import (
	"fmt"
	"time"

	"github.com/finassist/backend/internal/distribution"
	"github.com/finassist/backend/internal/events"
	"github.com/finassist/backend/internal/finance"
	"github.com/finassist/backend/internal/forecast"
	"github.com/finassist/backend/internal/metrics"
	"github.com/finassist/backend/internal/types"
	"gorm.io/gorm"
)

// Plan holds all stored records as value records for the forecast core.
type Plan struct {
	Incomes       []finance.Income
	Bonuses       []finance.Bonus
	Expenses      []finance.Expense
	Credits       []finance.Credit
	Goals         []finance.Goal
	WishlistItems []finance.WishlistItem
	Settings      Settings
}

// Sources returns the records events are generated from.
func (p Plan) Sources() events.Sources {
	return events.Sources{
		Incomes:  p.Incomes,
		Bonuses:  p.Bonuses,
		Expenses: p.Expenses,
		Credits:  p.Credits,
	}
}

// LoadPlan reads all records needed for forecasts and distributions.
func LoadPlan(db *gorm.DB) (Plan, error) {
	var plan Plan

	var incomes []Income
	if err := db.Order("created_at ASC").Find(&incomes).Error; err != nil {
		return Plan{}, fmt.Errorf("loading incomes: %w", err)
	}
	for _, i := range incomes {
		plan.Incomes = append(plan.Incomes, i.Finance())
	}

	var bonuses []Bonus
	if err := db.Order("created_at ASC").Find(&bonuses).Error; err != nil {
		return Plan{}, fmt.Errorf("loading bonuses: %w", err)
	}
	for _, b := range bonuses {
		plan.Bonuses = append(plan.Bonuses, b.Finance())
	}

	var expenses []Expense
	if err := db.Preload("Items").Order("created_at ASC").Find(&expenses).Error; err != nil {
		return Plan{}, fmt.Errorf("loading expenses: %w", err)
	}
	for _, e := range expenses {
		plan.Expenses = append(plan.Expenses, e.Finance())
	}

	var credits []Credit
	if err := db.Order("created_at ASC").Find(&credits).Error; err != nil {
		return Plan{}, fmt.Errorf("loading credits: %w", err)
	}
	for _, c := range credits {
		plan.Credits = append(plan.Credits, c.Finance())
	}

	var goals []Goal
	if err := db.Order("created_at ASC").Find(&goals).Error; err != nil {
		return Plan{}, fmt.Errorf("loading goals: %w", err)
	}
	for _, g := range goals {
		plan.Goals = append(plan.Goals, g.Finance())
	}

	var items []WishlistItem
	if err := db.Order("created_at ASC").Find(&items).Error; err != nil {
		return Plan{}, fmt.Errorf("loading wishlist items: %w", err)
	}
	for _, w := range items {
		plan.WishlistItems = append(plan.WishlistItems, w.Finance())
	}

	settings, err := GetSettings(db)
	if err != nil {
		return Plan{}, fmt.Errorf("loading settings: %w", err)
	}
	plan.Settings = settings

	return plan, nil
}

// Forecast simulates the window from from to to with the stored settings.
//
// The emergency fund is not saved for when it is disabled or skipped in
// the current period.
func (p Plan) Forecast(from, to types.Date, tracer forecast.Tracer) forecast.Result {
	start := time.Now()

	result := forecast.Run(forecast.Input{
		Events:            events.Build(p.Sources(), from, to),
		Goals:             p.Goals,
		WishlistItems:     p.WishlistItems,
		IncludeNiceToHave: p.Settings.IncludeNiceToHave,
		From:              from,
		To:                to,
		SkipEmergencyFund: !p.Settings.EmergencyFundEnabled || p.Settings.SkipEmergencyFundInPeriod,
		Tracer:            tracer,
	})

	metrics.ObserveForecast(time.Since(start), result.Days)
	return result
}

// Distribution splits the income of the period containing now. It uses the
// first income and the first expense.
func (p Plan) Distribution(period distribution.Period, now types.Date) distribution.Result {
	start := time.Now()

	in := distribution.Input{
		Credits:              p.Credits,
		Goals:                p.Goals,
		EmergencyFundEnabled: p.Settings.EmergencyFundEnabled,
		Period:               period,
		Now:                  now,
	}

	if len(p.Incomes) > 0 {
		in.Income = p.Incomes[0]
	}

	if len(p.Expenses) > 0 {
		in.Expense = p.Expenses[0]
	}

	result := distribution.Calculate(in)
	metrics.ObserveDistribution(time.Since(start))
	return result
}
