package models

import (
	"errors"

	"github.com/finassist/backend/internal/finance"
	"gorm.io/gorm"
)

// settingsID is the primary key of the only settings record.
const settingsID = 1

// Settings configure how forecasts and distributions treat goals.
type Settings struct {
	ID uint `json:"-" gorm:"primaryKey"`
	Timestamps
	EmergencyFundEnabled      bool
	EmergencyFundMonths       int
	SkipEmergencyFundInPeriod bool
	IncludeNiceToHave         bool
}

var ErrEmergencyFundMonthsInvalid = errors.New("the emergency fund must cover 3, 6, 9 or 12 months")

func (s *Settings) AfterSave(_ *gorm.DB) error {
	if !s.EmergencyFund().ValidMonths() {
		return ErrEmergencyFundMonthsInvalid
	}

	return nil
}

// EmergencyFund returns the emergency fund part of the settings.
func (s Settings) EmergencyFund() finance.EmergencyFundSettings {
	return finance.EmergencyFundSettings{
		Enabled:           s.EmergencyFundEnabled,
		Months:            s.EmergencyFundMonths,
		SkipCurrentPeriod: s.SkipEmergencyFundInPeriod,
	}
}

// GetSettings returns the stored settings. If there are none yet, the defaults
// are stored and returned.
func GetSettings(db *gorm.DB) (Settings, error) {
	defaults := finance.DefaultEmergencyFundSettings()

	settings := Settings{ID: settingsID}
	err := db.Where(Settings{ID: settingsID}).Attrs(Settings{
		EmergencyFundEnabled:      defaults.Enabled,
		EmergencyFundMonths:       defaults.Months,
		SkipEmergencyFundInPeriod: defaults.SkipCurrentPeriod,
	}).FirstOrCreate(&settings).Error

	return settings, err
}
