package v1_test

import (
	"net/http"
	"testing"

	"github.com/finassist/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/v1", "OPTIONS, GET"},
		{"http://example.com/v1/incomes", "OPTIONS, GET, POST"},
		{"http://example.com/v1/bonuses", "OPTIONS, GET, POST"},
		{"http://example.com/v1/expenses", "OPTIONS, GET, POST"},
		{"http://example.com/v1/credits", "OPTIONS, GET, POST"},
		{"http://example.com/v1/goals", "OPTIONS, GET, POST"},
		{"http://example.com/v1/wishlist-items", "OPTIONS, GET, POST"},
		{"http://example.com/v1/settings", "OPTIONS, GET, PATCH"},
		{"http://example.com/v1/forecast", "OPTIONS, GET"},
		{"http://example.com/v1/distribution", "OPTIONS, GET"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(t, http.MethodOptions, tt.path, "")

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))
		})
	}
}
