package v1_test

import (
	"net/http"

	v1 "github.com/finassist/backend/internal/controllers/v1"
	"github.com/finassist/backend/internal/models"
	"github.com/finassist/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSettingsDefaults() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var settings v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &settings)
	assert.True(suite.T(), settings.Data.EmergencyFundEnabled)
	assert.Equal(suite.T(), 3, settings.Data.EmergencyFundMonths)
	assert.False(suite.T(), settings.Data.SkipEmergencyFundInPeriod)
	assert.False(suite.T(), settings.Data.IncludeNiceToHave)
	assert.True(suite.T(), settings.Data.EmergencyFundTarget.IsZero())
	assert.Equal(suite.T(), "http://example.com/v1/settings", settings.Data.Links.Self)
}

func (suite *TestSuiteStandard) TestSettingsEmergencyFundTarget() {
	_ = createTestIncome(suite.T(), v1.IncomeEditable{MonthlyAmount: decimal.NewFromInt(100000)})
	_ = createTestIncome(suite.T(), v1.IncomeEditable{MonthlyAmount: decimal.NewFromInt(20000)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var settings v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &settings)
	assert.True(suite.T(), settings.Data.EmergencyFundTarget.Equal(decimal.NewFromInt(360000)), settings.Data.EmergencyFundTarget.String())

	r = test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings", map[string]any{"emergencyFundMonths": 6})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &settings)
	assert.Equal(suite.T(), 6, settings.Data.EmergencyFundMonths)
	assert.True(suite.T(), settings.Data.EmergencyFundTarget.Equal(decimal.NewFromInt(720000)), settings.Data.EmergencyFundTarget.String())
}

func (suite *TestSuiteStandard) TestSettingsUpdate() {
	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings", map[string]any{
		"emergencyFundEnabled": false,
		"includeNiceToHave":    true,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings", "")
	var settings v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &settings)
	assert.False(suite.T(), settings.Data.EmergencyFundEnabled)
	assert.True(suite.T(), settings.Data.IncludeNiceToHave)
	assert.Equal(suite.T(), 3, settings.Data.EmergencyFundMonths, "fields not in the body must not change")
}

func (suite *TestSuiteStandard) TestSettingsUpdateFails() {
	tests := []struct {
		name   string
		body   any
		errMsg string
	}{
		{"Unsupported months", map[string]any{"emergencyFundMonths": 5}, models.ErrEmergencyFundMonthsInvalid.Error()},
		{"Broken body", `{ "includeNiceToHave": "yes" }`, ""},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings", tt.body)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

			var settings v1.SettingsResponse
			test.DecodeResponse(suite.T(), &r, &settings)
			if tt.errMsg != "" {
				assert.Equal(suite.T(), tt.errMsg, *settings.Error)
			}
		})
	}

	// Failed updates are not stored
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings", "")
	var settings v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &settings)
	assert.Equal(suite.T(), 3, settings.Data.EmergencyFundMonths)
}

func (suite *TestSuiteStandard) TestSettingsDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	r = test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings", map[string]any{"emergencyFundMonths": 6})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
