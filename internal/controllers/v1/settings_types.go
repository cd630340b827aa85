package v1

import (
	"fmt"

	"github.com/finassist/backend/internal/finance"
	"github.com/finassist/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SettingsEditable represents all user configurable parameters
type SettingsEditable struct {
	EmergencyFundEnabled      bool `json:"emergencyFundEnabled" example:"true" default:"true"`        // Save for an emergency fund
	EmergencyFundMonths       int  `json:"emergencyFundMonths" example:"6" default:"3"`               // Months of income the emergency fund covers. One of 3, 6, 9 or 12.
	SkipEmergencyFundInPeriod bool `json:"skipEmergencyFundInPeriod" example:"false" default:"false"` // Do not save for the emergency fund in the current period
	IncludeNiceToHave         bool `json:"includeNiceToHave" example:"false" default:"false"`         // Allocate money to goals with niceToHave priority in forecasts
}

func (editable SettingsEditable) model() models.Settings {
	return models.Settings{
		EmergencyFundEnabled:      editable.EmergencyFundEnabled,
		EmergencyFundMonths:       editable.EmergencyFundMonths,
		SkipEmergencyFundInPeriod: editable.SkipEmergencyFundInPeriod,
		IncludeNiceToHave:         editable.IncludeNiceToHave,
	}
}

type SettingsLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/settings"` // The settings themselves
}

type Settings struct {
	SettingsEditable
	Links SettingsLinks `json:"links"`

	// These fields are computed
	EmergencyFundTarget decimal.Decimal `json:"emergencyFundTarget" example:"180000"` // The amount the emergency fund should hold with the current incomes
}

func newSettings(c *gin.Context, model models.Settings, incomes []finance.Income) Settings {
	url := c.GetString(string(models.DBContextURL))

	return Settings{
		SettingsEditable: SettingsEditable{
			EmergencyFundEnabled:      model.EmergencyFundEnabled,
			EmergencyFundMonths:       model.EmergencyFundMonths,
			SkipEmergencyFundInPeriod: model.SkipEmergencyFundInPeriod,
			IncludeNiceToHave:         model.IncludeNiceToHave,
		},
		Links: SettingsLinks{
			Self: fmt.Sprintf("%s/v1/settings", url),
		},
		EmergencyFundTarget: model.EmergencyFund().Target(incomes),
	}
}

type SettingsResponse struct {
	Error *string   `json:"error" example:"the emergency fund must cover 3, 6, 9 or 12 months"` // The error, if any occurred
	Data  *Settings `json:"data"`                                                               // The settings
}
