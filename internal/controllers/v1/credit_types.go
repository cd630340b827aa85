package v1

import (
	"fmt"

	"github.com/finassist/backend/internal/models"
	"github.com/finassist/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CreditEditable represents all user configurable parameters
type CreditEditable struct {
	Name          string          `json:"name" example:"Car loan" default:""`                             // Name of the credit
	MonthlyAmount decimal.Decimal `json:"monthlyAmount" example:"15000" minimum:"0.00000001" default:"0"` // Installment paid every month
	Day           int             `json:"day" example:"5" minimum:"1" maximum:"31"`                       // Day of month the installment is paid on
	EndDate       *types.Date     `json:"endDate" example:"2027-05-05"`                                   // Date of the last installment
}

func (editable CreditEditable) model() models.Credit {
	return models.Credit{
		Name:          editable.Name,
		MonthlyAmount: editable.MonthlyAmount,
		Day:           editable.Day,
		EndDate:       editable.EndDate,
	}
}

type CreditLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/credits/5d3c1f0e-2a7b-4c41-8e59-7a3e0b9d6f21"` // The credit itself
}

type Credit struct {
	models.DefaultModel
	CreditEditable
	Links CreditLinks `json:"links"`
}

func newCredit(c *gin.Context, model models.Credit) Credit {
	url := c.GetString(string(models.DBContextURL))

	return Credit{
		DefaultModel: model.DefaultModel,
		CreditEditable: CreditEditable{
			Name:          model.Name,
			MonthlyAmount: model.MonthlyAmount,
			Day:           model.Day,
			EndDate:       model.EndDate,
		},
		Links: CreditLinks{
			Self: fmt.Sprintf("%s/v1/credits/%s", url, model.ID),
		},
	}
}

type CreditListResponse struct {
	Data       []Credit    `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CreditCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CreditResponse `json:"data"`                                                          // List of created resources
}

func (r *CreditCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, CreditResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CreditResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Credit `json:"data"`                                                          // The resource
}

type CreditQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name. Supports "*" as wildcard.
	Day    int    `form:"day"`                        // By payment day
	Active bool   `form:"active" filterField:"false"` // Only credits that are still paid back today
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first credit returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of credits to return. Defaults to 50.
}
