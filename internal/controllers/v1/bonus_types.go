package v1

import (
	"fmt"

	"github.com/finassist/backend/internal/finance"
	"github.com/finassist/backend/internal/models"
	"github.com/finassist/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BonusEditable represents all user configurable parameters
type BonusEditable struct {
	Name   string              `json:"name" example:"Christmas bonus" default:""`               // Name of the bonus
	Amount decimal.Decimal     `json:"amount" example:"50000" minimum:"0.00000001" default:"0"` // Amount paid per payment
	Type   finance.BonusType   `json:"type" example:"recurring" enums:"oneTime,recurring"`      // One-time or recurring
	Date   *types.Date         `json:"date" example:"2025-12-15"`                               // Payment date of one-time bonuses
	Period finance.BonusPeriod `json:"period" example:"year" enums:"month,quarter,year"`        // Period of recurring bonuses
	Start  *types.Date         `json:"start" example:"2025-12-15"`                              // First payment of recurring bonuses
	End    *types.Date         `json:"end" example:"2030-12-31"`                                // Last possible payment of recurring bonuses
}

func (editable BonusEditable) model() models.Bonus {
	return models.Bonus{
		Name:   editable.Name,
		Amount: editable.Amount,
		Type:   editable.Type,
		Date:   editable.Date,
		Period: editable.Period,
		Start:  editable.Start,
		End:    editable.End,
	}
}

type BonusLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/bonuses/0f1d1b2d-7f0c-4d5e-9b6a-3f5d1c2e4a11"` // The bonus itself
}

type Bonus struct {
	models.DefaultModel
	BonusEditable
	Links BonusLinks `json:"links"`
}

func newBonus(c *gin.Context, model models.Bonus) Bonus {
	url := c.GetString(string(models.DBContextURL))

	return Bonus{
		DefaultModel: model.DefaultModel,
		BonusEditable: BonusEditable{
			Name:   model.Name,
			Amount: model.Amount,
			Type:   model.Type,
			Date:   model.Date,
			Period: model.Period,
			Start:  model.Start,
			End:    model.End,
		},
		Links: BonusLinks{
			Self: fmt.Sprintf("%s/v1/bonuses/%s", url, model.ID),
		},
	}
}

type BonusListResponse struct {
	Data       []Bonus     `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BonusCreateResponse struct {
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BonusResponse `json:"data"`                                                          // List of created resources
}

func (r *BonusCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, BonusResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BonusResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Bonus  `json:"data"`                                                          // The resource
}

type BonusQueryFilter struct {
	Name   string              `form:"name" filterField:"false"`   // By name. Supports "*" as wildcard.
	Type   finance.BonusType   `form:"type"`                       // By type
	Period finance.BonusPeriod `form:"period"`                     // By period
	Offset uint                `form:"offset" filterField:"false"` // The offset of the first bonus returned. Defaults to 0.
	Limit  int                 `form:"limit" filterField:"false"`  // Maximum number of bonuses to return. Defaults to 50.
}
