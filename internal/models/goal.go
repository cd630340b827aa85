package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/finassist/backend/internal/finance"
	"github.com/finassist/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Goal struct {
	DefaultModel
	Name          string `gorm:"uniqueIndex"`
	Note          string
	TargetAmount  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CurrentAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	TargetDate    types.Date
	Priority      finance.Priority
	Type          finance.GoalType
	SkipInPeriod  bool

	// Written by the forecast refresh
	RequiredPerMonth *decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ActualPerMonth   *decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ForecastDate     *types.Date

	TravelSubgoals TravelSubgoals
}

var (
	ErrGoalNameNotUnique            = errors.New("the goal name must be unique")
	ErrGoalAmountNotPositive        = errors.New("goal target amounts must be larger than zero")
	ErrGoalCurrentAmountNegative    = errors.New("the current amount of a goal must not be negative")
	ErrGoalPriorityInvalid          = errors.New("the goal priority must be one of 'critical', 'important' or 'niceToHave'")
	ErrGoalTypeInvalid              = errors.New("the goal type must be one of 'regular', 'emergencyFund' or 'travel'")
	ErrGoalTargetDateMissing        = errors.New("goals need a target date")
	ErrGoalDepositAmountNotPositive = errors.New("deposits must be larger than zero")
)

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Note = strings.TrimSpace(g.Note)
	return nil
}

func (g *Goal) AfterSave(_ *gorm.DB) error {
	if !g.TargetAmount.IsPositive() {
		return ErrGoalAmountNotPositive
	}

	if g.CurrentAmount.IsNegative() {
		return ErrGoalCurrentAmountNegative
	}

	if !g.Priority.Valid() {
		return ErrGoalPriorityInvalid
	}

	if !g.Type.Valid() {
		return ErrGoalTypeInvalid
	}

	if g.TargetDate.IsZero() {
		return ErrGoalTargetDateMissing
	}

	return nil
}

// SetTravelSubgoals computes the subgoals for travel goals and removes
// them from all other goals.
func (g *Goal) SetTravelSubgoals(today types.Date) {
	if g.Type != finance.GoalTravel {
		g.TravelSubgoals = nil
		return
	}

	g.TravelSubgoals = finance.NewTravelSubgoals(g.TargetAmount, g.TargetDate, today)
}

// Finance returns the goal as value record for the forecast core.
func (g Goal) Finance() finance.Goal {
	return finance.Goal{
		ID:               g.ID,
		Name:             g.Name,
		TargetAmount:     g.TargetAmount,
		CurrentAmount:    g.CurrentAmount,
		TargetDate:       g.TargetDate,
		Priority:         g.Priority,
		Type:             g.Type,
		SkipInPeriod:     g.SkipInPeriod,
		RequiredPerMonth: g.RequiredPerMonth,
		ActualPerMonth:   g.ActualPerMonth,
		ForecastDate:     g.ForecastDate,
		TravelSubgoals:   g.TravelSubgoals,
	}
}

// TravelSubgoals is stored as JSON.
type TravelSubgoals []finance.TravelSubgoal

// Scan writes the value from the database.
func (t *TravelSubgoals) Scan(value any) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*t = nil
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("cannot scan %T into travel subgoals", value)
	}

	return json.Unmarshal(data, t)
}

// Value returns the value for the SQL driver to write to the database.
func (t TravelSubgoals) Value() (driver.Value, error) {
	if len(t) == 0 {
		return nil, nil
	}

	data, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}

	return string(data), nil
}

// GormDataType defines the data type used by gorm the type.
func (TravelSubgoals) GormDataType() string {
	return "text"
}
