package v1

import (
	"fmt"

	"github.com/finassist/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// IncomeEditable represents all user configurable parameters
type IncomeEditable struct {
	Name              string          `json:"name" example:"Salary" default:""`                         // Name of the income
	Currency          string          `json:"currency" example:"EUR" default:""`                        // ISO 4217 currency code. Informational only.
	MonthlyAmount     decimal.Decimal `json:"monthlyAmount" example:"100000" minimum:"0" default:"0"`   // Amount paid per month
	AdvanceDay        int             `json:"advanceDay" example:"25" minimum:"1" maximum:"31"`         // Day of month the advance is paid on
	AdvancePercentage decimal.Decimal `json:"advancePercentage" example:"40" minimum:"0" maximum:"100"` // Share of the monthly amount paid as advance, in percent
	SalaryDay         int             `json:"salaryDay" example:"10" minimum:"1" maximum:"31"`          // Day of month the salary is paid on
	SalaryPercentage  decimal.Decimal `json:"salaryPercentage" example:"60" minimum:"0" maximum:"100"`  // Share of the monthly amount paid as salary, in percent
}

func (editable IncomeEditable) model() models.Income {
	return models.Income{
		Name:              editable.Name,
		Currency:          editable.Currency,
		MonthlyAmount:     editable.MonthlyAmount,
		AdvanceDay:        editable.AdvanceDay,
		AdvancePercentage: editable.AdvancePercentage,
		SalaryDay:         editable.SalaryDay,
		SalaryPercentage:  editable.SalaryPercentage,
	}
}

type IncomeLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/incomes/b3b6ad59-bd8e-4d2b-8ce4-4bd1a4cd0e8b"` // The income itself
}

type Income struct {
	models.DefaultModel
	IncomeEditable
	Links IncomeLinks `json:"links"`
}

func newIncome(c *gin.Context, model models.Income) Income {
	url := c.GetString(string(models.DBContextURL))

	return Income{
		DefaultModel: model.DefaultModel,
		IncomeEditable: IncomeEditable{
			Name:              model.Name,
			Currency:          model.Currency,
			MonthlyAmount:     model.MonthlyAmount,
			AdvanceDay:        model.AdvanceDay,
			AdvancePercentage: model.AdvancePercentage,
			SalaryDay:         model.SalaryDay,
			SalaryPercentage:  model.SalaryPercentage,
		},
		Links: IncomeLinks{
			Self: fmt.Sprintf("%s/v1/incomes/%s", url, model.ID),
		},
	}
}

type IncomeListResponse struct {
	Data       []Income    `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type IncomeCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []IncomeResponse `json:"data"`                                                          // List of created resources
}

func (r *IncomeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, IncomeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type IncomeResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Income `json:"data"`                                                          // The resource
}

type IncomeQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // By name. Supports "*" as wildcard.
	Currency string `form:"currency"`                   // By currency
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first income returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of incomes to return. Defaults to 50.
}
