package v1_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	v1 "github.com/finassist/backend/internal/controllers/v1"
	"github.com/finassist/backend/internal/finance"
	"github.com/finassist/backend/internal/models"
	"github.com/finassist/backend/internal/router"
	"github.com/finassist/backend/internal/types"
	"github.com/finassist/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestGoal(t *testing.T, g v1.GoalEditable, expectedStatus ...int) v1.GoalResponse {
	if g.Name == "" {
		g.Name = uuid.NewString()
	}

	if g.TargetAmount.IsZero() {
		g.TargetAmount = decimal.NewFromInt(120000)
	}

	if g.TargetDate.IsZero() {
		g.TargetDate = types.Today().AddMonths(12)
	}

	if g.Priority == "" {
		g.Priority = finance.PriorityImportant
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/goals", []v1.GoalEditable{g})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var goal v1.GoalCreateResponse
	test.DecodeResponse(t, &r, &goal)

	if r.Code == http.StatusCreated {
		return goal.Data[0]
	}

	return v1.GoalResponse{}
}

func (suite *TestSuiteStandard) TestGoalsDBClosed() {
	suite.CloseDB()

	createTestGoal(suite.T(), v1.GoalEditable{}, http.StatusInternalServerError)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestGoalsCreate() {
	g := createTestGoal(suite.T(), v1.GoalEditable{
		Name:          " New car ",
		TargetAmount:  decimal.NewFromInt(100000),
		CurrentAmount: decimal.NewFromInt(25000),
	})

	assert.Equal(suite.T(), "New car", g.Data.Name)
	assert.Equal(suite.T(), finance.GoalRegular, g.Data.Type, "type must default to regular")
	assert.True(suite.T(), g.Data.Progress.Equal(decimal.NewFromFloat(0.25)), g.Data.Progress.String())
	assert.False(suite.T(), g.Data.Achieved)
	assert.Nil(suite.T(), g.Data.ForecastDate)
	assert.Empty(suite.T(), g.Data.TravelSubgoals)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/goals/%s/deposits", g.Data.ID), g.Data.Links.Deposits)
}

func (suite *TestSuiteStandard) TestGoalsCreateTravel() {
	g := createTestGoal(suite.T(), v1.GoalEditable{
		Type:         finance.GoalTravel,
		TargetAmount: decimal.NewFromInt(90000),
		TargetDate:   types.Today().AddDays(365),
	})

	require.Len(suite.T(), g.Data.TravelSubgoals, 3)
	assert.Equal(suite.T(), finance.SubgoalTickets, g.Data.TravelSubgoals[0].Name)
	assert.True(suite.T(), g.Data.TravelSubgoals[0].Amount.Equal(decimal.NewFromInt(30000)))

	// Subgoals are stored
	r := test.Request(suite.T(), http.MethodGet, g.Data.Links.Self, "")
	var read v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &read)
	assert.Len(suite.T(), read.Data.TravelSubgoals, 3)
}

func (suite *TestSuiteStandard) TestGoalsCreateFails() {
	tests := []struct {
		name string
		goal v1.GoalEditable
		err  error
	}{
		{"Negative target", v1.GoalEditable{TargetAmount: decimal.NewFromInt(-1)}, models.ErrGoalAmountNotPositive},
		{"Negative current amount", v1.GoalEditable{CurrentAmount: decimal.NewFromInt(-1)}, models.ErrGoalCurrentAmountNegative},
		{"Invalid priority", v1.GoalEditable{Priority: "whenever"}, models.ErrGoalPriorityInvalid},
		{"Invalid type", v1.GoalEditable{Type: "house"}, models.ErrGoalTypeInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			g := tt.goal
			g.Name = uuid.NewString()
			g.TargetDate = types.Today().AddMonths(6)
			if g.TargetAmount.IsZero() {
				g.TargetAmount = decimal.NewFromInt(1000)
			}
			if g.Priority == "" {
				g.Priority = finance.PriorityCritical
			}

			r := test.Request(t, http.MethodPost, "http://example.com/v1/goals", []v1.GoalEditable{g})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.GoalCreateResponse
			test.DecodeResponse(t, &r, &response)
			require.Len(t, response.Data, 1)
			assert.Equal(t, tt.err.Error(), *response.Data[0].Error)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsCreateWithoutTargetDate() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/goals", `[{ "name": "Car", "targetAmount": 1000, "priority": "critical" }]`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.GoalCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.ErrGoalTargetDateMissing.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestGoalsCreateDuplicateName() {
	_ = createTestGoal(suite.T(), v1.GoalEditable{Name: "Car"})
	_ = createTestGoal(suite.T(), v1.GoalEditable{Name: "Car"}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGoalsGetSingle() {
	g := createTestGoal(suite.T(), v1.GoalEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Goal", g.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No Goal with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"OPTIONS Existing Goal", g.Data.ID.String(), http.StatusNoContent, http.MethodOptions},
		{"DELETE Invalid ID", "23", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/goals/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsGetFilter() {
	today := types.Today()

	_ = createTestGoal(suite.T(), v1.GoalEditable{Name: "Laptop", Note: "For work", Priority: finance.PriorityImportant, TargetDate: today.AddMonths(3)})
	_ = createTestGoal(suite.T(), v1.GoalEditable{Name: "Car repair", Priority: finance.PriorityCritical, TargetDate: today.AddMonths(6)})
	_ = createTestGoal(suite.T(), v1.GoalEditable{Name: "Trip", Priority: finance.PriorityNiceToHave, Type: finance.GoalTravel, TargetDate: today.AddMonths(12)})
	_ = createTestGoal(suite.T(), v1.GoalEditable{Name: "Bike", Priority: finance.PriorityImportant, TargetDate: today.AddMonths(1), TargetAmount: decimal.NewFromInt(500), CurrentAmount: decimal.NewFromInt(500)})

	tests := []struct {
		name  string
		query string
		names []string
	}{
		{"All in allocation order", "", []string{"Car repair", "Bike", "Laptop", "Trip"}},
		{"Priority", "priority=important", []string{"Bike", "Laptop"}},
		{"Type", "type=travel", []string{"Trip"}},
		{"Achieved", "achieved=true", []string{"Bike"}},
		{"Not achieved", "achieved=false", []string{"Car repair", "Laptop", "Trip"}},
		{"Search in note", "search=work", []string{"Laptop"}},
		{"Search in name", "search=repair", []string{"Car repair"}},
		{"Name glob", "name=*r*", []string{"Car repair", "Trip"}},
		{"Limit", "limit=2", []string{"Car repair", "Bike"}},
		{"Offset", "offset=3", []string{"Trip"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.GoalListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/goals?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			names := make([]string, 0)
			for _, g := range re.Data {
				names = append(names, g.Name)
			}
			assert.Equal(t, tt.names, names)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsUpdate() {
	g := createTestGoal(suite.T(), v1.GoalEditable{Name: "Trip", TargetAmount: decimal.NewFromInt(90000), TargetDate: types.Today().AddDays(365)})
	require.Empty(suite.T(), g.Data.TravelSubgoals)

	// Changing the type to travel creates the subgoals
	r := test.Request(suite.T(), http.MethodPatch, g.Data.Links.Self, map[string]any{"type": "travel"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), finance.GoalTravel, updated.Data.Type)
	assert.Equal(suite.T(), "Trip", updated.Data.Name)
	require.Len(suite.T(), updated.Data.TravelSubgoals, 3)

	// Changing it back removes them
	r = test.Request(suite.T(), http.MethodPatch, g.Data.Links.Self, map[string]any{"type": "regular", "skipInPeriod": true})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Empty(suite.T(), updated.Data.TravelSubgoals)
	assert.True(suite.T(), updated.Data.SkipInPeriod)
}

func (suite *TestSuiteStandard) TestGoalsUpdateFails() {
	g := createTestGoal(suite.T(), v1.GoalEditable{})

	tests := []struct {
		name string
		body any
	}{
		{"Broken body", `{ "name": 2 }`},
		{"Invalid priority", map[string]any{"priority": "whenever"}},
		{"Zero target", map[string]any{"targetAmount": 0}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, g.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsDeposit() {
	g := createTestGoal(suite.T(), v1.GoalEditable{TargetAmount: decimal.NewFromInt(1000), CurrentAmount: decimal.NewFromInt(250)})
	deposits := g.Data.Links.Deposits

	r := test.Request(suite.T(), http.MethodOptions, deposits, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, POST", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodPost, deposits, v1.DepositEditable{Amount: decimal.NewFromInt(750)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.True(suite.T(), updated.Data.CurrentAmount.Equal(decimal.NewFromInt(1000)), updated.Data.CurrentAmount.String())
	assert.True(suite.T(), updated.Data.Achieved)

	// The deposit is stored
	r = test.Request(suite.T(), http.MethodGet, g.Data.Links.Self, "")
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.True(suite.T(), updated.Data.CurrentAmount.Equal(decimal.NewFromInt(1000)), updated.Data.CurrentAmount.String())
}

func (suite *TestSuiteStandard) TestGoalsDepositConcurrent() {
	g := createTestGoal(suite.T(), v1.GoalEditable{TargetAmount: decimal.NewFromInt(1000)})

	url, _ := url.Parse("http://example.com")
	r, teardown, err := router.Config(url)
	defer teardown()
	require.Nil(suite.T(), err)
	router.AttachRoutes(r.Group("/"))

	body, _ := json.Marshal(v1.DepositEditable{Amount: decimal.RequireFromString("12.5")})

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			recorder := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, g.Data.Links.Deposits, bytes.NewReader(body))
			r.ServeHTTP(recorder, req)
			assert.Equal(suite.T(), http.StatusOK, recorder.Code, recorder.Body.String())
		}()
	}
	wg.Wait()

	var goal models.Goal
	require.Nil(suite.T(), models.DB.First(&goal, g.Data.ID).Error)
	assert.True(suite.T(), goal.CurrentAmount.Equal(decimal.NewFromInt(250)), "current amount is %s", goal.CurrentAmount)
}

func (suite *TestSuiteStandard) TestGoalsDepositFails() {
	g := createTestGoal(suite.T(), v1.GoalEditable{})

	tests := []struct {
		name   string
		url    string
		body   any
		status int
	}{
		{"Zero amount", g.Data.Links.Deposits, v1.DepositEditable{}, http.StatusBadRequest},
		{"Negative amount", g.Data.Links.Deposits, v1.DepositEditable{Amount: decimal.NewFromInt(-5)}, http.StatusBadRequest},
		{"Broken body", g.Data.Links.Deposits, `{ "amount": "lots" }`, http.StatusBadRequest},
		{"No goal", fmt.Sprintf("http://example.com/v1/goals/%s/deposits", uuid.New()), v1.DepositEditable{Amount: decimal.NewFromInt(5)}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, tt.url, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsDelete() {
	g := createTestGoal(suite.T(), v1.GoalEditable{TargetDate: types.NewDate(2030, time.January, 1)})

	r := test.Request(suite.T(), http.MethodDelete, g.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
