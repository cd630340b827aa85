package v1

import (
	"fmt"

	"github.com/finassist/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ExpenseCategoryEditable is a fixed monthly amount. Categories with a day
// are planned expenses, all others are regular expenses.
type ExpenseCategoryEditable struct {
	Name   string          `json:"name" example:"Rent" default:""`                 // Name of the category
	Amount decimal.Decimal `json:"amount" example:"40000" minimum:"0" default:"0"` // Monthly amount
	Day    *int            `json:"day" example:"3" minimum:"1" maximum:"31"`       // Day of month the category is paid on
}

// AdditionalExpenseEditable is an ad-hoc monthly amount.
type AdditionalExpenseEditable struct {
	Name    string          `json:"name" example:"Gym" default:""`                 // Name of the expense
	Amount  decimal.Decimal `json:"amount" example:"3000" minimum:"0" default:"0"` // Monthly amount
	Comment string          `json:"comment" example:"Until March" default:""`      // Comment about the expense
}

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	Name       string                      `json:"name" example:"Household" default:""`            // Name of the expense
	Day        *int                        `json:"day" example:"1" minimum:"1" maximum:"31"`       // Day the expense is booked on in forecasts. Defaults to the 1st.
	Wallet     decimal.Decimal             `json:"wallet" example:"31000" minimum:"0" default:"0"` // Monthly allowance for day to day spending
	Categories []ExpenseCategoryEditable   `json:"categories"`                                     // Categories of the expense. Replaces all categories on update.
	Additional []AdditionalExpenseEditable `json:"additional"`                                     // Additional expenses. Replaces all additional expenses on update.
}

// model returns the expense without its items
func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Name:   editable.Name,
		Day:    editable.Day,
		Wallet: editable.Wallet,
	}
}

// categoryItems returns the items for the categories of the expense
func (editable ExpenseEditable) categoryItems() []models.ExpenseItem {
	items := make([]models.ExpenseItem, 0, len(editable.Categories))
	for _, category := range editable.Categories {
		items = append(items, models.ExpenseItem{
			Name:   category.Name,
			Amount: category.Amount,
			Day:    category.Day,
		})
	}

	return items
}

// additionalItems returns the items for the additional expenses
func (editable ExpenseEditable) additionalItems() []models.ExpenseItem {
	items := make([]models.ExpenseItem, 0, len(editable.Additional))
	for _, additional := range editable.Additional {
		items = append(items, models.ExpenseItem{
			Name:       additional.Name,
			Amount:     additional.Amount,
			Comment:    additional.Comment,
			Additional: true,
		})
	}

	return items
}

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/expenses/9a3f7c1e-5b2d-4e8a-a1c6-0d4b7e2f9c35"` // The expense itself
}

type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Links ExpenseLinks `json:"links"`

	// These fields are computed
	TotalMonthly decimal.Decimal `json:"totalMonthly" example:"87500"` // Sum of all categories, the wallet and all additional expenses
}

// newExpense returns the API representation of the expense. Items need to be loaded.
func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.DBContextURL))

	editable := ExpenseEditable{
		Name:       model.Name,
		Day:        model.Day,
		Wallet:     model.Wallet,
		Categories: make([]ExpenseCategoryEditable, 0),
		Additional: make([]AdditionalExpenseEditable, 0),
	}

	for _, item := range model.Items {
		if item.Additional {
			editable.Additional = append(editable.Additional, AdditionalExpenseEditable{
				Name:    item.Name,
				Amount:  item.Amount,
				Comment: item.Comment,
			})
			continue
		}

		editable.Categories = append(editable.Categories, ExpenseCategoryEditable{
			Name:   item.Name,
			Amount: item.Amount,
			Day:    item.Day,
		})
	}

	return Expense{
		DefaultModel:    model.DefaultModel,
		ExpenseEditable: editable,
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
		},
		TotalMonthly: model.Finance().TotalMonthlyExpense(),
	}
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ExpenseResponse `json:"data"`                                                          // List of created resources
}

func (r *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Expense `json:"data"`                                                          // The resource
}

type ExpenseQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name. Supports "*" as wildcard.
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first expense returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of expenses to return. Defaults to 50.
}
