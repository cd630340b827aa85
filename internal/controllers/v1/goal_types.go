package v1

import (
	"fmt"

	"github.com/finassist/backend/internal/finance"
	"github.com/finassist/backend/internal/models"
	"github.com/finassist/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GoalEditable represents all user configurable parameters
type GoalEditable struct {
	Name          string           `json:"name" example:"New car" default:""`                                             // Name of the goal
	Note          string           `json:"note" example:"Replaces the old one" default:""`                                // Note about the goal
	TargetAmount  decimal.Decimal  `json:"targetAmount" example:"120000" minimum:"0.00000001" default:"0"`                // How much money should be saved for this goal?
	CurrentAmount decimal.Decimal  `json:"currentAmount" example:"15000" minimum:"0" default:"0"`                         // How much money is saved already?
	TargetDate    types.Date       `json:"targetDate" example:"2026-06-30"`                                               // When the goal should be reached
	Priority      finance.Priority `json:"priority" example:"important" enums:"critical,important,niceToHave"`            // Priority of the goal
	Type          finance.GoalType `json:"type" example:"regular" enums:"regular,emergencyFund,travel" default:"regular"` // Type of the goal
	SkipInPeriod  bool             `json:"skipInPeriod" example:"false" default:"false"`                                  // Do not save for this goal in the current period
}

// model returns the database resource for the API representation of the editable fields
func (editable GoalEditable) model() models.Goal {
	return models.Goal{
		Name:          editable.Name,
		Note:          editable.Note,
		TargetAmount:  editable.TargetAmount,
		CurrentAmount: editable.CurrentAmount,
		TargetDate:    editable.TargetDate,
		Priority:      editable.Priority,
		Type:          editable.Type,
		SkipInPeriod:  editable.SkipInPeriod,
	}
}

type GoalLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`              // The goal itself
	Deposits string `json:"deposits" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/deposits"` // Endpoint to deposit money for the goal
}

type Goal struct {
	models.DefaultModel
	GoalEditable
	Links GoalLinks `json:"links"`

	// These fields are computed
	Progress         decimal.Decimal         `json:"progress" example:"0.125"`          // Share of the target amount saved already, between 0 and 1
	Achieved         bool                    `json:"achieved" example:"false"`          // Is the target amount saved?
	Overdue          bool                    `json:"overdue" example:"false"`           // Is the goal forecast to be reached after its target date?
	RequiredPerMonth *decimal.Decimal        `json:"requiredPerMonth" example:"7500"`   // Amount per month needed to reach the goal in time, as of the last forecast refresh
	ActualPerMonth   *decimal.Decimal        `json:"actualPerMonth" example:"7500"`     // Amount per month the goal receives, as of the last forecast refresh
	ForecastDate     *types.Date             `json:"forecastDate" example:"2026-05-10"` // Date the goal is forecast to be reached, as of the last forecast refresh
	TravelSubgoals   []finance.TravelSubgoal `json:"travelSubgoals"`                    // Parts of travel goals
}

// newGoal returns the API v1 representation of the resource
func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.DBContextURL))
	goal := model.Finance()

	subgoals := make([]finance.TravelSubgoal, 0, len(model.TravelSubgoals))
	subgoals = append(subgoals, model.TravelSubgoals...)

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Name:          model.Name,
			Note:          model.Note,
			TargetAmount:  model.TargetAmount,
			CurrentAmount: model.CurrentAmount,
			TargetDate:    model.TargetDate,
			Priority:      model.Priority,
			Type:          model.Type,
			SkipInPeriod:  model.SkipInPeriod,
		},
		Links: GoalLinks{
			Self:     fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
			Deposits: fmt.Sprintf("%s/v1/goals/%s/deposits", url, model.ID),
		},
		Progress:         goal.Progress(),
		Achieved:         goal.IsAchieved(),
		Overdue:          goal.IsOverdue(),
		RequiredPerMonth: model.RequiredPerMonth,
		ActualPerMonth:   model.ActualPerMonth,
		ForecastDate:     model.ForecastDate,
		TravelSubgoals:   subgoals,
	}
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type GoalCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []GoalResponse `json:"data"`                                                          // List of created resources
}

func (r *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, GoalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Goal   `json:"data"`                                                          // The resource
}

type GoalQueryFilter struct {
	Name     string           `form:"name" filterField:"false"`     // By name. Supports "*" as wildcard.
	Search   string           `form:"search" filterField:"false"`   // By string in name or note
	Priority finance.Priority `form:"priority"`                     // By priority
	Type     finance.GoalType `form:"type"`                         // By type
	Achieved bool             `form:"achieved" filterField:"false"` // Is the goal achieved?
	Offset   uint             `form:"offset" filterField:"false"`   // The offset of the first goal returned. Defaults to 0.
	Limit    int              `form:"limit" filterField:"false"`    // Maximum number of goals to return. Defaults to 50.
}

// DepositEditable is money put aside for a goal.
type DepositEditable struct {
	Amount decimal.Decimal `json:"amount" example:"5000" minimum:"0.00000001"` // Amount to add to the current amount of the goal
}
