package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/finassist/backend/internal/controllers/v1"
	"github.com/finassist/backend/internal/models"
	"github.com/finassist/backend/internal/types"
	"github.com/finassist/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCredit(t *testing.T, c v1.CreditEditable, expectedStatus ...int) v1.CreditResponse {
	if c.Name == "" {
		c.Name = uuid.NewString()
	}

	if c.MonthlyAmount.IsZero() {
		c.MonthlyAmount = decimal.NewFromInt(15000)
	}

	if c.Day == 0 {
		c.Day = 5
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/credits", []v1.CreditEditable{c})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var credit v1.CreditCreateResponse
	test.DecodeResponse(t, &r, &credit)

	if r.Code == http.StatusCreated {
		return credit.Data[0]
	}

	return v1.CreditResponse{}
}

func (suite *TestSuiteStandard) TestCreditsDBClosed() {
	suite.CloseDB()

	createTestCredit(suite.T(), v1.CreditEditable{}, http.StatusInternalServerError)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/credits", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestCreditsGetSingle() {
	c := createTestCredit(suite.T(), v1.CreditEditable{Name: "Car loan"})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Credit", c.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No Credit with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"OPTIONS Existing Credit", c.Data.ID.String(), http.StatusNoContent, http.MethodOptions},
		{"PATCH Invalid ID", "-56", http.StatusBadRequest, http.MethodPatch},
		{"DELETE No Credit with this ID", uuid.New().String(), http.StatusNotFound, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/credits/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCreditsCreateFails() {
	tests := []struct {
		name   string
		credit v1.CreditEditable
		err    error
	}{
		{"Negative amount", v1.CreditEditable{MonthlyAmount: decimal.NewFromInt(-100)}, models.ErrCreditAmountNotPositive},
		{"Day too large", v1.CreditEditable{Day: 32}, models.ErrCreditDayInvalid},
		{"Negative day", v1.CreditEditable{Day: -1}, models.ErrCreditDayInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			c := tt.credit
			c.Name = uuid.NewString()
			if c.MonthlyAmount.IsZero() {
				c.MonthlyAmount = decimal.NewFromInt(100)
			}
			if c.Day == 0 {
				c.Day = 1
			}

			r := test.Request(t, http.MethodPost, "http://example.com/v1/credits", []v1.CreditEditable{c})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.CreditCreateResponse
			test.DecodeResponse(t, &r, &response)
			require.Len(t, response.Data, 1)
			assert.Equal(t, tt.err.Error(), *response.Data[0].Error)
		})
	}
}

func (suite *TestSuiteStandard) TestCreditsGetFilter() {
	today := types.Today()

	_ = createTestCredit(suite.T(), v1.CreditEditable{Name: "Car loan", Day: 5})
	_ = createTestCredit(suite.T(), v1.CreditEditable{Name: "Phone loan", Day: 15, EndDate: ptr(today.AddMonths(-1))})
	_ = createTestCredit(suite.T(), v1.CreditEditable{Name: "Mortgage", Day: 5, EndDate: ptr(today.AddMonths(120))})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Day", "day=5", 2},
		{"Active", "active=true", 2},
		{"Active false returns all", "active=false", 3},
		{"Name glob", "name=*loan", 2},
		{"Name and day", "name=*loan&day=15", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.CreditListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/credits?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data))
		})
	}
}

func (suite *TestSuiteStandard) TestCreditsUpdate() {
	c := createTestCredit(suite.T(), v1.CreditEditable{Name: "Car loan"})

	r := test.Request(suite.T(), http.MethodPatch, c.Data.Links.Self, map[string]any{
		"day":     28,
		"endDate": "2027-05-28",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.CreditResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), 28, updated.Data.Day)
	assert.Equal(suite.T(), "Car loan", updated.Data.Name)
	require.NotNil(suite.T(), updated.Data.EndDate)
	assert.Equal(suite.T(), "2027-05-28", updated.Data.EndDate.String())

	r = test.Request(suite.T(), http.MethodPatch, c.Data.Links.Self, map[string]any{"monthlyAmount": 0})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreditsDelete() {
	c := createTestCredit(suite.T(), v1.CreditEditable{})

	r := test.Request(suite.T(), http.MethodDelete, c.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
