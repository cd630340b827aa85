package v1_test

import (
	"net/http"

	v1 "github.com/finassist/backend/internal/controllers/v1"
	"github.com/finassist/backend/internal/distribution"
	"github.com/finassist/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestDistribution() {
	_ = createTestIncome(suite.T(), v1.IncomeEditable{MonthlyAmount: decimal.NewFromInt(100000)})
	_ = createTestExpense(suite.T(), household())

	tests := []struct {
		name         string
		query        string
		period       distribution.Period
		periodIncome int64
	}{
		{"Default", "", distribution.PeriodMonth, 100000},
		{"Month", "period=month", distribution.PeriodMonth, 100000},
		{"Advance", "period=advance", distribution.PeriodAdvance, 40000},
		{"Salary", "period=salary", distribution.PeriodSalary, 60000},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/distribution?"+tt.query, "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var response v1.DistributionResponse
			test.DecodeResponse(suite.T(), &r, &response)
			require.NotNil(suite.T(), response.Data)
			assert.Equal(suite.T(), tt.period, response.Data.Period)
			assert.True(suite.T(), response.Data.PeriodIncome.Equal(decimal.NewFromInt(tt.periodIncome)), response.Data.PeriodIncome.String())
		})
	}
}

func (suite *TestSuiteStandard) TestDistributionMonthBuckets() {
	_ = createTestIncome(suite.T(), v1.IncomeEditable{MonthlyAmount: decimal.NewFromInt(100000)})
	_ = createTestExpense(suite.T(), household())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/distribution?period=month", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DistributionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Rent is paid on a day, groceries are a regular expense. The gym is an
	// additional expense and is part of the unexpected amount.
	require.Len(suite.T(), response.Data.Planned, 1)
	assert.Equal(suite.T(), "Rent", response.Data.Planned[0].Name)
	require.Len(suite.T(), response.Data.Regular, 1)
	assert.Equal(suite.T(), "Groceries", response.Data.Regular[0].Name)
	assert.True(suite.T(), response.Data.TotalPlanned.Equal(decimal.NewFromInt(40000)), response.Data.TotalPlanned.String())
	assert.True(suite.T(), response.Data.TotalRegular.Equal(decimal.NewFromInt(15000)), response.Data.TotalRegular.String())
	assert.True(suite.T(), response.Data.Unexpected.Equal(decimal.NewFromInt(14000)), response.Data.Unexpected.String())
	assert.True(suite.T(), response.Data.Deficit.IsZero())
}

func (suite *TestSuiteStandard) TestDistributionWithoutRecords() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/distribution", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DistributionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.PeriodIncome.IsZero())
}

func (suite *TestSuiteStandard) TestDistributionInvalidPeriod() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/distribution?period=week", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.DistributionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), distribution.ErrPeriodInvalid.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestDistributionDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/distribution", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
