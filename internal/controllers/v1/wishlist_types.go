package v1

import (
	"fmt"

	"github.com/finassist/backend/internal/models"
	"github.com/finassist/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// WishlistItemEditable represents all user configurable parameters
type WishlistItemEditable struct {
	Name   string          `json:"name" example:"Headphones" default:""`                    // Name of the item
	Note   string          `json:"note" example:"The noise cancelling ones" default:""`     // Note about the item
	Amount decimal.Decimal `json:"amount" example:"25000" minimum:"0.00000001" default:"0"` // Price of the item
	Saved  decimal.Decimal `json:"saved" example:"5000" minimum:"0" default:"0"`            // Amount saved for the item already
}

func (editable WishlistItemEditable) model() models.WishlistItem {
	return models.WishlistItem{
		Name:   editable.Name,
		Note:   editable.Note,
		Amount: editable.Amount,
		Saved:  editable.Saved,
	}
}

type WishlistItemLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/wishlist-items/2c7e4d1a-8f3b-4a6e-9d05-b1c2e3f4a5d6"` // The wishlist item itself
}

type WishlistItem struct {
	models.DefaultModel
	WishlistItemEditable
	Links WishlistItemLinks `json:"links"`

	// These fields are computed
	Remaining    decimal.Decimal `json:"remaining" example:"20000"`         // Amount still missing
	Funded       bool            `json:"funded" example:"false"`            // Is the item fully saved for?
	ForecastDate *types.Date     `json:"forecastDate" example:"2026-09-25"` // Date the item is forecast to be funded, as of the last forecast refresh
}

func newWishlistItem(c *gin.Context, model models.WishlistItem) WishlistItem {
	url := c.GetString(string(models.DBContextURL))
	item := model.Finance()

	return WishlistItem{
		DefaultModel: model.DefaultModel,
		WishlistItemEditable: WishlistItemEditable{
			Name:   model.Name,
			Note:   model.Note,
			Amount: model.Amount,
			Saved:  model.Saved,
		},
		Links: WishlistItemLinks{
			Self: fmt.Sprintf("%s/v1/wishlist-items/%s", url, model.ID),
		},
		Remaining:    item.Remaining(),
		Funded:       item.IsFunded(),
		ForecastDate: model.ForecastDate,
	}
}

type WishlistItemListResponse struct {
	Data       []WishlistItem `json:"data"`                                                          // List of resources
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type WishlistItemCreateResponse struct {
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []WishlistItemResponse `json:"data"`                                                          // List of created resources
}

func (r *WishlistItemCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, WishlistItemResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type WishlistItemResponse struct {
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *WishlistItem `json:"data"`                                                          // The resource
}

type WishlistItemQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name. Supports "*" as wildcard.
	Funded bool   `form:"funded" filterField:"false"` // Is the item fully saved for?
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first item returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of items to return. Defaults to 50.
}
