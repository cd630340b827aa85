package v1

import (
	"net/http"

	"github.com/finassist/backend/internal/distribution"
	"github.com/finassist/backend/internal/httputil"
	"github.com/finassist/backend/internal/models"
	"github.com/finassist/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterDistributionRoutes registers the routes for distributions with
// the RouterGroup that is passed.
func RegisterDistributionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDistribution)
	r.GET("", GetDistribution)
}

type DistributionQueryFilter struct {
	Period string `form:"period"` // The pay period. One of "month", "advance" or "salary". Defaults to "month".
}

type DistributionResponse struct {
	Error *string              `json:"error" example:"period must be one of \"month\", \"advance\" or \"salary\""` // The error, if any occurred
	Data  *distribution.Result `json:"data"`                                                                       // The distribution
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Distribution
// @Success		204
// @Router			/v1/distribution [options]
func OptionsDistribution(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get distribution
// @Description	Splits the income of the current pay period into planned and regular expenses, the wallet,
// @Description	the emergency fund and goals. Uses the first income and the first expense.
// @Tags			Distribution
// @Produce		json
// @Success		200		{object}	DistributionResponse
// @Failure		400		{object}	DistributionResponse
// @Failure		500		{object}	DistributionResponse
// @Param			period	query		string	false	"The pay period: month, advance or salary"
// @Router			/v1/distribution [get]
func GetDistribution(c *gin.Context) {
	var filter DistributionQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	period, err := distribution.ParsePeriod(filter.Period)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DistributionResponse{
			Error: &s,
		})
		return
	}

	plan, err := models.LoadPlan(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DistributionResponse{
			Error: &s,
		})
		return
	}

	result := plan.Distribution(period, types.Today())
	c.JSON(http.StatusOK, DistributionResponse{Data: &result})
}
