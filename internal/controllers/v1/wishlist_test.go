package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/finassist/backend/internal/controllers/v1"
	"github.com/finassist/backend/internal/models"
	"github.com/finassist/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestWishlistItem(t *testing.T, w v1.WishlistItemEditable, expectedStatus ...int) v1.WishlistItemResponse {
	if w.Name == "" {
		w.Name = uuid.NewString()
	}

	if w.Amount.IsZero() {
		w.Amount = decimal.NewFromInt(25000)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/wishlist-items", []v1.WishlistItemEditable{w})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var item v1.WishlistItemCreateResponse
	test.DecodeResponse(t, &r, &item)

	if r.Code == http.StatusCreated {
		return item.Data[0]
	}

	return v1.WishlistItemResponse{}
}

func (suite *TestSuiteStandard) TestWishlistItemsDBClosed() {
	suite.CloseDB()

	createTestWishlistItem(suite.T(), v1.WishlistItemEditable{}, http.StatusInternalServerError)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/wishlist-items", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestWishlistItemsCreate() {
	w := createTestWishlistItem(suite.T(), v1.WishlistItemEditable{
		Name:   "Headphones",
		Note:   " The noise cancelling ones ",
		Amount: decimal.NewFromInt(25000),
		Saved:  decimal.NewFromInt(5000),
	})

	assert.Equal(suite.T(), "The noise cancelling ones", w.Data.Note)
	assert.True(suite.T(), w.Data.Remaining.Equal(decimal.NewFromInt(20000)), w.Data.Remaining.String())
	assert.False(suite.T(), w.Data.Funded)
	assert.Nil(suite.T(), w.Data.ForecastDate)
}

func (suite *TestSuiteStandard) TestWishlistItemsCreateFails() {
	tests := []struct {
		name string
		item v1.WishlistItemEditable
		err  error
	}{
		{"Negative amount", v1.WishlistItemEditable{Amount: decimal.NewFromInt(-1)}, models.ErrWishlistAmountNotPositive},
		{"Negative saved", v1.WishlistItemEditable{Amount: decimal.NewFromInt(100), Saved: decimal.NewFromInt(-1)}, models.ErrWishlistSavedNegative},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/wishlist-items", []v1.WishlistItemEditable{tt.item})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.WishlistItemCreateResponse
			test.DecodeResponse(t, &r, &response)
			require.Len(t, response.Data, 1)
			assert.Equal(t, tt.err.Error(), *response.Data[0].Error)
		})
	}
}

func (suite *TestSuiteStandard) TestWishlistItemsGetSingle() {
	w := createTestWishlistItem(suite.T(), v1.WishlistItemEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Item", w.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No Item with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"OPTIONS Existing Item", w.Data.ID.String(), http.StatusNoContent, http.MethodOptions},
		{"PATCH Invalid ID", "notaUUID", http.StatusBadRequest, http.MethodPatch},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/wishlist-items/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestWishlistItemsGetFilter() {
	_ = createTestWishlistItem(suite.T(), v1.WishlistItemEditable{Name: "Headphones"})
	_ = createTestWishlistItem(suite.T(), v1.WishlistItemEditable{Name: "Phone", Amount: decimal.NewFromInt(500), Saved: decimal.NewFromInt(500)})
	_ = createTestWishlistItem(suite.T(), v1.WishlistItemEditable{Name: "Chair"})

	tests := []struct {
		name  string
		query string
		names []string
	}{
		{"All, oldest first", "", []string{"Headphones", "Phone", "Chair"}},
		{"Funded", "funded=true", []string{"Phone"}},
		{"Not funded", "funded=false", []string{"Headphones", "Chair"}},
		{"Name glob", "name=*phone*", []string{"Headphones"}},
		{"Name glob case sensitive", "name=*hone*", []string{"Headphones", "Phone"}},
		{"Limit", "limit=1", []string{"Headphones"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.WishlistItemListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/wishlist-items?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			names := make([]string, 0)
			for _, w := range re.Data {
				names = append(names, w.Name)
			}
			assert.Equal(t, tt.names, names)
		})
	}
}

func (suite *TestSuiteStandard) TestWishlistItemsUpdate() {
	w := createTestWishlistItem(suite.T(), v1.WishlistItemEditable{Amount: decimal.NewFromInt(1000)})

	r := test.Request(suite.T(), http.MethodPatch, w.Data.Links.Self, map[string]any{"saved": 1000})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.WishlistItemResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.True(suite.T(), updated.Data.Funded)
	assert.True(suite.T(), updated.Data.Remaining.IsZero())

	r = test.Request(suite.T(), http.MethodPatch, w.Data.Links.Self, map[string]any{"amount": -5})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestWishlistItemsDelete() {
	w := createTestWishlistItem(suite.T(), v1.WishlistItemEditable{})

	r := test.Request(suite.T(), http.MethodDelete, w.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodOptions, w.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
