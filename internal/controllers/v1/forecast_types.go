package v1

import (
	"fmt"

	"github.com/finassist/backend/internal/finance"
	"github.com/finassist/backend/internal/forecast"
	"github.com/finassist/backend/internal/models"
	"github.com/finassist/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ForecastHorizonYears is the length of forecasts without a "to" date.
var ForecastHorizonYears = 10

type ForecastQueryFilter struct {
	From     string `form:"from"`     // First day of the forecast. Defaults to today.
	To       string `form:"to"`       // Last day of the forecast. Defaults to the horizon after from.
	Goal     string `form:"goal"`     // Only return goals with a matching name. Supports "*" as wildcard.
	Trace    bool   `form:"trace"`    // Return the allocation trace
	Balances bool   `form:"balances"` // Return the balance at the end of every day
}

// ForecastGoal is a goal at the end of the forecast.
type ForecastGoal struct {
	ID               uuid.UUID        `json:"id" example:"0d4ab0b4-2a4b-4e3c-9c38-9a2b8b3a4e21"`
	Name             string           `json:"name" example:"Vacation"`
	Priority         finance.Priority `json:"priority" example:"important"`
	Type             finance.GoalType `json:"type" example:"travel"`
	TargetAmount     decimal.Decimal  `json:"targetAmount" example:"120000"`
	CurrentAmount    decimal.Decimal  `json:"currentAmount" example:"120000"` // Amount saved at the end of the forecast
	TargetDate       types.Date       `json:"targetDate" example:"2026-06-01"`
	ForecastDate     *types.Date      `json:"forecastDate" example:"2026-05-10"` // Date the goal is reached, null if it is not reached in the forecast
	Achieved         bool             `json:"achieved" example:"true"`
	Overdue          bool             `json:"overdue" example:"false"` // Is the goal forecast to be reached after its target date?
	RequiredPerMonth *decimal.Decimal `json:"requiredPerMonth" example:"10000"`
	ActualPerMonth   *decimal.Decimal `json:"actualPerMonth" example:"12000"`
	Links            ForecastLinks    `json:"links"`
}

// ForecastWishlistItem is a wishlist item at the end of the forecast.
type ForecastWishlistItem struct {
	ID           uuid.UUID       `json:"id" example:"2c7e4d1a-8f3b-4a6e-9d05-b1c2e3f4a5d6"`
	Name         string          `json:"name" example:"Headphones"`
	Amount       decimal.Decimal `json:"amount" example:"25000"`
	Saved        decimal.Decimal `json:"saved" example:"25000"` // Amount saved at the end of the forecast
	ForecastDate *types.Date     `json:"forecastDate" example:"2026-09-25"`
	Links        ForecastLinks   `json:"links"`
}

type ForecastLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/goals/0d4ab0b4-2a4b-4e3c-9c38-9a2b8b3a4e21"` // The resource the forecast is for
}

// ForecastBalance is the cash at the end of a day.
type ForecastBalance struct {
	Date    types.Date      `json:"date" example:"2025-01-10"`
	Balance decimal.Decimal `json:"balance" example:"0"`      // Unallocated cash
	Accrued decimal.Decimal `json:"accrued" example:"120000"` // Sum of all positive daily net cash flows until this day
}

type Forecast struct {
	From          types.Date             `json:"from" example:"2025-01-01"`
	To            types.Date             `json:"to" example:"2034-12-31"`
	Days          int                    `json:"days" example:"365"` // Number of simulated days. Lower than the window when all goals were reached early.
	Goals         []ForecastGoal         `json:"goals"`
	WishlistItems []ForecastWishlistItem `json:"wishlistItems"`
	Balances      []ForecastBalance      `json:"balances,omitempty"`
	Trace         []forecast.DayTrace    `json:"trace,omitempty"`
}

func newForecast(c *gin.Context, from, to types.Date, result forecast.Result, goalPattern string, balances bool) Forecast {
	url := c.GetString(string(models.DBContextURL))

	f := Forecast{
		From:          from,
		To:            to,
		Days:          result.Days,
		Goals:         make([]ForecastGoal, 0),
		WishlistItems: make([]ForecastWishlistItem, 0),
	}

	goals := filterName(result.Goals, goalPattern, func(g finance.Goal) string { return g.Name })
	for _, g := range goals {
		f.Goals = append(f.Goals, ForecastGoal{
			ID:               g.ID,
			Name:             g.Name,
			Priority:         g.Priority,
			Type:             g.Type,
			TargetAmount:     g.TargetAmount,
			CurrentAmount:    g.CurrentAmount,
			TargetDate:       g.TargetDate,
			ForecastDate:     g.ForecastDate,
			Achieved:         g.IsAchieved(),
			Overdue:          g.IsOverdue(),
			RequiredPerMonth: g.RequiredPerMonth,
			ActualPerMonth:   g.ActualPerMonth,
			Links: ForecastLinks{
				Self: fmt.Sprintf("%s/v1/goals/%s", url, g.ID),
			},
		})
	}

	for _, w := range result.WishlistItems {
		f.WishlistItems = append(f.WishlistItems, ForecastWishlistItem{
			ID:           w.ID,
			Name:         w.Name,
			Amount:       w.Amount,
			Saved:        w.Saved,
			ForecastDate: w.ForecastDate,
			Links: ForecastLinks{
				Self: fmt.Sprintf("%s/v1/wishlist-items/%s", url, w.ID),
			},
		})
	}

	if balances {
		dates := maps.Keys(result.Balance)
		slices.SortFunc(dates, func(a, b types.Date) int {
			return a.Compare(b)
		})

		for _, d := range dates {
			f.Balances = append(f.Balances, ForecastBalance{
				Date:    d,
				Balance: result.Balance[d],
				Accrued: result.Accrued[d],
			})
		}
	}

	return f
}

type ForecastResponse struct {
	Error *string   `json:"error" example:"the to date must not be before the from date"` // The error, if any occurred
	Data  *Forecast `json:"data"`                                                         // The forecast
}
