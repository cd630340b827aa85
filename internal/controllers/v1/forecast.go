package v1

import (
	"net/http"

	"github.com/finassist/backend/internal/forecast"
	"github.com/finassist/backend/internal/httputil"
	"github.com/finassist/backend/internal/models"
	"github.com/finassist/backend/internal/types"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RegisterForecastRoutes registers the routes for forecasts with
// the RouterGroup that is passed.
func RegisterForecastRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsForecast)
	r.GET("", GetForecast)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Forecast
// @Success		204
// @Router			/v1/forecast [options]
func OptionsForecast(c *gin.Context) {
	httputil.OptionsGet(c)
}

// forecastWindow parses the window of the forecast from the query.
func forecastWindow(filter ForecastQueryFilter) (from, to types.Date, err error) {
	from = types.Today()
	if filter.From != "" {
		from, err = types.ParseDate(filter.From)
		if err != nil {
			return
		}
	}

	limit := from.AddMonths(12 * ForecastHorizonYears)
	to = limit
	if filter.To != "" {
		to, err = types.ParseDate(filter.To)
		if err != nil {
			return
		}
	}

	if to.Before(from) {
		err = errForecastWindowInvalid
	}

	if to.After(limit) {
		err = errForecastWindowTooLong
	}

	return
}

// @Summary		Get forecast
// @Description	Simulates the cash flow of all stored records day by day and returns when goals and wishlist items are reached.
// @Description	Simulated amounts are not stored.
// @Tags			Forecast
// @Produce		json
// @Success		200			{object}	ForecastResponse
// @Failure		400			{object}	ForecastResponse
// @Failure		500			{object}	ForecastResponse
// @Param			from		query		string	false	"First day of the forecast, e.g. 2025-01-01. Defaults to today."
// @Param			to			query		string	false	"Last day of the forecast. Defaults to and must not be later than the forecast horizon after from."
// @Param			goal		query		string	false	"Filter goals by name, '*' matches any text"
// @Param			trace		query		bool	false	"Return the allocation trace"
// @Param			balances	query		bool	false	"Return the balance at the end of every day"
// @Router			/v1/forecast [get]
func GetForecast(c *gin.Context) {
	var filter ForecastQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ForecastResponse{
			Error: &s,
		})
		return
	}

	from, to, err := forecastWindow(filter)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ForecastResponse{
			Error: &s,
		})
		return
	}

	plan, err := models.LoadPlan(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ForecastResponse{
			Error: &s,
		})
		return
	}

	var recorder forecast.Recorder
	var tracer forecast.Tracer
	if filter.Trace {
		tracer = forecast.Tracers{
			forecast.LogTracer{Logger: log.With().Str("request-id", requestid.Get(c)).Logger()},
			&recorder,
		}
	}

	result := plan.Forecast(from, to, tracer)

	data := newForecast(c, from, to, result, filter.Goal, filter.Balances)
	data.Trace = recorder.Days

	c.JSON(http.StatusOK, ForecastResponse{Data: &data})
}
