package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/finassist/backend/internal/controllers/v1"
	"github.com/finassist/backend/internal/finance"
	"github.com/finassist/backend/internal/types"
	"github.com/finassist/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createForecastData creates an income paying 60000 on the 10th and 40000
// on the 25th, a goal of 90000 and a wishlist item of 10000.
func (suite *TestSuiteStandard) createForecastData() {
	_ = createTestIncome(suite.T(), v1.IncomeEditable{MonthlyAmount: decimal.NewFromInt(100000)})
	_ = createTestGoal(suite.T(), v1.GoalEditable{
		Name:         "Laptop",
		Priority:     finance.PriorityCritical,
		TargetAmount: decimal.NewFromInt(90000),
		TargetDate:   types.NewDate(2025, time.June, 1),
	})
	_ = createTestWishlistItem(suite.T(), v1.WishlistItemEditable{Name: "Headphones", Amount: decimal.NewFromInt(10000)})
}

func (suite *TestSuiteStandard) TestForecast() {
	suite.createForecastData()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/forecast?from=2025-01-01&to=2025-03-31", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var forecast v1.ForecastResponse
	test.DecodeResponse(suite.T(), &r, &forecast)

	// The forecast stops once all goals are reached
	assert.Equal(suite.T(), 25, forecast.Data.Days)

	require.Len(suite.T(), forecast.Data.Goals, 1)
	goal := forecast.Data.Goals[0]
	assert.Equal(suite.T(), "Laptop", goal.Name)
	assert.True(suite.T(), goal.Achieved)
	assert.False(suite.T(), goal.Overdue)
	require.NotNil(suite.T(), goal.ForecastDate)
	assert.Equal(suite.T(), "2025-01-25", goal.ForecastDate.String())
	assert.Contains(suite.T(), goal.Links.Self, "http://example.com/v1/goals/")

	require.Len(suite.T(), forecast.Data.WishlistItems, 1)
	item := forecast.Data.WishlistItems[0]
	require.NotNil(suite.T(), item.ForecastDate)
	assert.Equal(suite.T(), "2025-01-25", item.ForecastDate.String())
	assert.True(suite.T(), item.Saved.Equal(decimal.NewFromInt(10000)), item.Saved.String())

	assert.Empty(suite.T(), forecast.Data.Balances)
	assert.Empty(suite.T(), forecast.Data.Trace)

	// Simulated amounts are not stored
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals", "")
	var goals v1.GoalListResponse
	test.DecodeResponse(suite.T(), &r, &goals)
	assert.True(suite.T(), goals.Data[0].CurrentAmount.IsZero())
}

func (suite *TestSuiteStandard) TestForecastTraceAndBalances() {
	suite.createForecastData()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/forecast?from=2025-01-01&to=2025-03-31&trace=true&balances=true", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var forecast v1.ForecastResponse
	test.DecodeResponse(suite.T(), &r, &forecast)

	require.Len(suite.T(), forecast.Data.Trace, 2)
	assert.Equal(suite.T(), "2025-01-10", forecast.Data.Trace[0].Date.String())
	require.Len(suite.T(), forecast.Data.Trace[0].Goals, 1)
	assert.True(suite.T(), forecast.Data.Trace[0].Goals[0].Amount.Equal(decimal.NewFromInt(60000)))
	assert.Equal(suite.T(), "2025-01-25", forecast.Data.Trace[1].Date.String())
	assert.True(suite.T(), forecast.Data.Trace[1].Goals[0].Reached)
	require.Len(suite.T(), forecast.Data.Trace[1].Wishlist, 1)

	require.Len(suite.T(), forecast.Data.Balances, 25)
	assert.Equal(suite.T(), "2025-01-01", forecast.Data.Balances[0].Date.String())
	last := forecast.Data.Balances[24]
	assert.Equal(suite.T(), "2025-01-25", last.Date.String())
	assert.True(suite.T(), last.Balance.IsZero(), last.Balance.String())
	assert.True(suite.T(), last.Accrued.Equal(decimal.NewFromInt(100000)), last.Accrued.String())
}

func (suite *TestSuiteStandard) TestForecastGoalFilter() {
	suite.createForecastData()

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Match", "goal=Lap*", 1},
		{"No match", "goal=Car", 0},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/forecast?from=2025-01-01&to=2025-01-31&"+tt.query, "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var forecast v1.ForecastResponse
			test.DecodeResponse(suite.T(), &r, &forecast)
			assert.Len(suite.T(), forecast.Data.Goals, tt.len)
			assert.Len(suite.T(), forecast.Data.WishlistItems, 1, "wishlist items are never filtered")
		})
	}
}

func (suite *TestSuiteStandard) TestForecastDefaultWindow() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/forecast", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var forecast v1.ForecastResponse
	test.DecodeResponse(suite.T(), &r, &forecast)

	today := types.Today()
	assert.Equal(suite.T(), today, forecast.Data.From)
	assert.Equal(suite.T(), today.AddMonths(12*v1.ForecastHorizonYears), forecast.Data.To)
	assert.Empty(suite.T(), forecast.Data.Goals)
	assert.NotNil(suite.T(), forecast.Data.Goals)
}

func (suite *TestSuiteStandard) TestForecastInvalidWindow() {
	tests := []struct {
		name  string
		query string
	}{
		{"To before from", "from=2025-02-01&to=2025-01-31"},
		{"Invalid from", "from=yesterday"},
		{"Invalid to", "from=2025-01-01&to=2025-13-01"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/forecast?"+tt.query, "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

			var forecast v1.ForecastResponse
			test.DecodeResponse(suite.T(), &r, &forecast)
			assert.NotNil(suite.T(), forecast.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestForecastWindowLimit() {
	from := types.NewDate(2025, time.January, 1)
	limit := from.AddMonths(12 * v1.ForecastHorizonYears)

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/forecast?from=%s&to=%s", from, limit), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	tests := []struct {
		name string
		to   types.Date
	}{
		{"One day too long", limit.AddDays(1)},
		{"Far future", types.NewDate(9999, time.December, 31)},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/forecast?from=%s&to=%s", from, tt.to), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

			var forecast v1.ForecastResponse
			test.DecodeResponse(suite.T(), &r, &forecast)
			require.NotNil(suite.T(), forecast.Error)
			assert.Equal(suite.T(), "the forecast window must not be longer than the forecast horizon", *forecast.Error)
		})
	}

	// Windows starting far in the past are limited the same way
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/forecast?from=0001-01-01&to=9999-12-31", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestForecastDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/forecast", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
