package v1

import (
	"net/http"

	"github.com/finassist/backend/internal/httputil"
	"github.com/finassist/backend/internal/models"
	"github.com/finassist/backend/internal/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterCreditRoutes registers the routes for credits with
// the RouterGroup that is passed.
func RegisterCreditRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCreditList)
		r.GET("", GetCredits)
		r.POST("", CreateCredits)
	}

	// Credit with ID
	{
		r.OPTIONS("/:id", OptionsCreditDetail)
		r.GET("/:id", GetCredit)
		r.PATCH("/:id", UpdateCredit)
		r.DELETE("/:id", DeleteCredit)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Credits
// @Success		204
// @Router			/v1/credits [options]
func OptionsCreditList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Credits
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/credits/{id} [options]
func OptionsCreditDetail(c *gin.Context) {
	resourceOptionsDetail[models.Credit](c)
}

// @Summary		Create credits
// @Description	Creates new credits
// @Tags			Credits
// @Produce		json
// @Success		201		{object}	CreditCreateResponse
// @Failure		400		{object}	CreditCreateResponse
// @Failure		500		{object}	CreditCreateResponse
// @Param			credits	body		[]CreditEditable	true	"Credits"
// @Router			/v1/credits [post]
func CreateCredits(c *gin.Context) {
	var editables []CreditEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CreditCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CreditCreateResponse{}

	for _, editable := range editables {
		credit := editable.model()

		err = models.DB.Create(&credit).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newCredit(c, credit)
		r.Data = append(r.Data, CreditResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get credits
// @Description	Returns a list of credits
// @Tags			Credits
// @Produce		json
// @Success		200	{object}	CreditListResponse
// @Failure		400	{object}	CreditListResponse
// @Failure		500	{object}	CreditListResponse
// @Router			/v1/credits [get]
// @Param			name	query	string	false	"Filter by name, '*' matches any text"
// @Param			day		query	int		false	"Filter by payment day"
// @Param			active	query	bool	false	"Only credits that are still paid back today"
// @Param			offset	query	uint	false	"The offset of the first Credit returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Credits to return. Defaults to 50."
func GetCredits(c *gin.Context) {
	var filter CreditQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := CreditEditable{Day: filter.Day}.model()

	var credits []models.Credit
	err := models.DB.
		Order("name ASC").
		Where(&filterModel, queryFields...).
		Find(&credits).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CreditListResponse{
			Error: &s,
		})
		return
	}

	if slices.Contains(setFields, "Active") && filter.Active {
		today := types.Today()
		credits = slices.DeleteFunc(credits, func(credit models.Credit) bool {
			return !credit.Finance().ActiveOn(today)
		})
	}

	credits = filterName(credits, filter.Name, func(credit models.Credit) string { return credit.Name })
	credits, pagination := paginate(credits, filter.Offset, limit(setFields, filter.Limit))

	data := make([]Credit, 0)
	for _, credit := range credits {
		data = append(data, newCredit(c, credit))
	}

	c.JSON(http.StatusOK, CreditListResponse{
		Data:       data,
		Pagination: pagination,
	})
}

// @Summary		Get credit
// @Description	Returns a specific credit
// @Tags			Credits
// @Produce		json
// @Success		200	{object}	CreditResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/credits/{id} [get]
func GetCredit(c *gin.Context) {
	credit, ok := getResource[models.Credit](c, models.DB)
	if !ok {
		return
	}

	data := newCredit(c, credit)
	c.JSON(http.StatusOK, CreditResponse{Data: &data})
}

// @Summary		Update credit
// @Description	Update an existing credit. Only values to be updated need to be specified.
// @Tags			Credits
// @Accept			json
// @Produce		json
// @Success		200		{object}	CreditResponse
// @Failure		400		{object}	CreditResponse
// @Failure		404		{object}	httpError
// @Failure		500		{object}	CreditResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			credit	body		CreditEditable	true	"Credit"
// @Router			/v1/credits/{id} [patch]
func UpdateCredit(c *gin.Context) {
	credit, ok := getResource[models.Credit](c, models.DB)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CreditEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CreditResponse{
			Error: &s,
		})
		return
	}

	var data CreditEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CreditResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&credit).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CreditResponse{
			Error: &s,
		})
		return
	}

	r := newCredit(c, credit)
	c.JSON(http.StatusOK, CreditResponse{Data: &r})
}

// @Summary		Delete credit
// @Description	Deletes a credit
// @Tags			Credits
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/credits/{id} [delete]
func DeleteCredit(c *gin.Context) {
	deleteResource[models.Credit](c)
}
