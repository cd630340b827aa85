package v1

import (
	"net/http"

	"github.com/finassist/backend/internal/httputil"
	"github.com/finassist/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterBonusRoutes registers the routes for bonuses with
// the RouterGroup that is passed.
func RegisterBonusRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBonusList)
		r.GET("", GetBonuses)
		r.POST("", CreateBonuses)
	}

	// Bonus with ID
	{
		r.OPTIONS("/:id", OptionsBonusDetail)
		r.GET("/:id", GetBonus)
		r.PATCH("/:id", UpdateBonus)
		r.DELETE("/:id", DeleteBonus)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bonuses
// @Success		204
// @Router			/v1/bonuses [options]
func OptionsBonusList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bonuses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/bonuses/{id} [options]
func OptionsBonusDetail(c *gin.Context) {
	resourceOptionsDetail[models.Bonus](c)
}

// @Summary		Create bonuses
// @Description	Creates new bonuses
// @Tags			Bonuses
// @Produce		json
// @Success		201		{object}	BonusCreateResponse
// @Failure		400		{object}	BonusCreateResponse
// @Failure		500		{object}	BonusCreateResponse
// @Param			bonuses	body		[]BonusEditable	true	"Bonuses"
// @Router			/v1/bonuses [post]
func CreateBonuses(c *gin.Context) {
	var editables []BonusEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BonusCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BonusCreateResponse{}

	for _, editable := range editables {
		bonus := editable.model()

		err = models.DB.Create(&bonus).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newBonus(c, bonus)
		r.Data = append(r.Data, BonusResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get bonuses
// @Description	Returns a list of bonuses
// @Tags			Bonuses
// @Produce		json
// @Success		200	{object}	BonusListResponse
// @Failure		400	{object}	BonusListResponse
// @Failure		500	{object}	BonusListResponse
// @Router			/v1/bonuses [get]
// @Param			name	query	string	false	"Filter by name, '*' matches any text"
// @Param			type	query	string	false	"Filter by type"
// @Param			period	query	string	false	"Filter by period"
// @Param			offset	query	uint	false	"The offset of the first Bonus returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Bonuses to return. Defaults to 50."
func GetBonuses(c *gin.Context) {
	var filter BonusQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := BonusEditable{
		Type:   filter.Type,
		Period: filter.Period,
	}.model()

	var bonuses []models.Bonus
	err := models.DB.
		Order("name ASC").
		Where(&filterModel, queryFields...).
		Find(&bonuses).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BonusListResponse{
			Error: &s,
		})
		return
	}

	bonuses = filterName(bonuses, filter.Name, func(b models.Bonus) string { return b.Name })
	bonuses, pagination := paginate(bonuses, filter.Offset, limit(setFields, filter.Limit))

	data := make([]Bonus, 0)
	for _, bonus := range bonuses {
		data = append(data, newBonus(c, bonus))
	}

	c.JSON(http.StatusOK, BonusListResponse{
		Data:       data,
		Pagination: pagination,
	})
}

// @Summary		Get bonus
// @Description	Returns a specific bonus
// @Tags			Bonuses
// @Produce		json
// @Success		200	{object}	BonusResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/bonuses/{id} [get]
func GetBonus(c *gin.Context) {
	bonus, ok := getResource[models.Bonus](c, models.DB)
	if !ok {
		return
	}

	data := newBonus(c, bonus)
	c.JSON(http.StatusOK, BonusResponse{Data: &data})
}

// @Summary		Update bonus
// @Description	Update an existing bonus. Only values to be updated need to be specified.
// @Tags			Bonuses
// @Accept			json
// @Produce		json
// @Success		200		{object}	BonusResponse
// @Failure		400		{object}	BonusResponse
// @Failure		404		{object}	httpError
// @Failure		500		{object}	BonusResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			bonus	body		BonusEditable	true	"Bonus"
// @Router			/v1/bonuses/{id} [patch]
func UpdateBonus(c *gin.Context) {
	bonus, ok := getResource[models.Bonus](c, models.DB)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BonusEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BonusResponse{
			Error: &s,
		})
		return
	}

	var data BonusEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BonusResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&bonus).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BonusResponse{
			Error: &s,
		})
		return
	}

	r := newBonus(c, bonus)
	c.JSON(http.StatusOK, BonusResponse{Data: &r})
}

// @Summary		Delete bonus
// @Description	Deletes a bonus
// @Tags			Bonuses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/bonuses/{id} [delete]
func DeleteBonus(c *gin.Context) {
	deleteResource[models.Bonus](c)
}
