package v1

import (
	"fmt"
	"net/http"

	"github.com/finassist/backend/internal/finance"
	"github.com/finassist/backend/internal/httputil"
	"github.com/finassist/backend/internal/models"
	"github.com/finassist/backend/internal/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterGoalRoutes registers the routes for goals with
// the RouterGroup that is passed.
func RegisterGoalRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsGoalList)
		r.GET("", GetGoals)
		r.POST("", CreateGoals)
	}

	// Goal with ID
	{
		r.OPTIONS("/:id", OptionsGoalDetail)
		r.GET("/:id", GetGoal)
		r.PATCH("/:id", UpdateGoal)
		r.DELETE("/:id", DeleteGoal)
		r.OPTIONS("/:id/deposits", OptionsGoalDeposits)
		r.POST("/:id/deposits", CreateGoalDeposit)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Router			/v1/goals [options]
func OptionsGoalList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [options]
func OptionsGoalDetail(c *gin.Context) {
	resourceOptionsDetail[models.Goal](c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id}/deposits [options]
func OptionsGoalDeposits(c *gin.Context) {
	if _, ok := getResource[models.Goal](c, models.DB); !ok {
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Create goals
// @Description	Creates new goals. Travel goals are split into subgoals automatically.
// @Tags			Goals
// @Produce		json
// @Success		201		{object}	GoalCreateResponse
// @Failure		400		{object}	GoalCreateResponse
// @Failure		500		{object}	GoalCreateResponse
// @Param			goals	body		[]GoalEditable	true	"Goals"
// @Router			/v1/goals [post]
func CreateGoals(c *gin.Context) {
	var editables []GoalEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := GoalCreateResponse{}
	today := types.Today()

	for _, editable := range editables {
		goal := editable.model()
		if goal.Type == "" {
			goal.Type = finance.GoalRegular
		}
		goal.SetTravelSubgoals(today)

		err = models.DB.Create(&goal).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newGoal(c, goal)
		r.Data = append(r.Data, GoalResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get goals
// @Description	Returns a list of goals in allocation order
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalListResponse
// @Failure		400	{object}	GoalListResponse
// @Failure		500	{object}	GoalListResponse
// @Router			/v1/goals [get]
// @Param			name		query	string	false	"Filter by name, '*' matches any text"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			priority	query	string	false	"Filter by priority"
// @Param			type		query	string	false	"Filter by type"
// @Param			achieved	query	bool	false	"Is the goal achieved?"
// @Param			offset		query	uint	false	"The offset of the first Goal returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Goals to return. Defaults to 50."
func GetGoals(c *gin.Context) {
	var filter GoalQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := GoalEditable{
		Priority: filter.Priority,
		Type:     filter.Type,
	}.model()

	q := models.DB.
		Order("created_at ASC").
		Where(&filterModel, queryFields...)

	if filter.Search != "" {
		q = q.Where(
			models.DB.Where("note LIKE ?", fmt.Sprintf("%%%s%%", filter.Search)).Or(
				models.DB.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Search)),
			),
		)
	}

	var goals []models.Goal
	err := q.Find(&goals).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalListResponse{
			Error: &s,
		})
		return
	}

	if slices.Contains(setFields, "Achieved") {
		goals = slices.DeleteFunc(goals, func(g models.Goal) bool {
			return g.Finance().IsAchieved() != filter.Achieved
		})
	}

	// Goals are listed in the order they receive money
	slices.SortStableFunc(goals, func(a, b models.Goal) int {
		return finance.CompareGoals(a.Finance(), b.Finance())
	})

	goals = filterName(goals, filter.Name, func(g models.Goal) string { return g.Name })
	goals, pagination := paginate(goals, filter.Offset, limit(setFields, filter.Limit))

	data := make([]Goal, 0)
	for _, goal := range goals {
		data = append(data, newGoal(c, goal))
	}

	c.JSON(http.StatusOK, GoalListResponse{
		Data:       data,
		Pagination: pagination,
	})
}

// @Summary		Get goal
// @Description	Returns a specific goal
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [get]
func GetGoal(c *gin.Context) {
	goal, ok := getResource[models.Goal](c, models.DB)
	if !ok {
		return
	}

	data := newGoal(c, goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &data})
}

// @Summary		Update goal
// @Description	Update an existing goal. Only values to be updated need to be specified.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		404		{object}	httpError
// @Failure		500		{object}	GoalResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/goals/{id} [patch]
func UpdateGoal(c *gin.Context) {
	goal, ok := getResource[models.Goal](c, models.DB)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, GoalEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &s,
		})
		return
	}

	var data GoalEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &s,
		})
		return
	}

	update := data.model()

	// The subgoals depend on the type, amount and date of the goal
	merged := goal
	err = mergeGoal(&merged, update, updateFields)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &s,
		})
		return
	}
	merged.SetTravelSubgoals(types.Today())
	update.TravelSubgoals = merged.TravelSubgoals
	updateFields = append(updateFields, "TravelSubgoals")

	err = models.DB.Model(&goal).Select("", updateFields...).Updates(update).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &s,
		})
		return
	}

	r := newGoal(c, goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &r})
}

// mergeGoal sets the fields of update that are contained in fields on goal.
func mergeGoal(goal *models.Goal, update models.Goal, fields []any) error {
	for _, f := range fields {
		switch f {
		case "Name":
			goal.Name = update.Name
		case "Note":
			goal.Note = update.Note
		case "TargetAmount":
			goal.TargetAmount = update.TargetAmount
		case "CurrentAmount":
			goal.CurrentAmount = update.CurrentAmount
		case "TargetDate":
			goal.TargetDate = update.TargetDate
		case "Priority":
			goal.Priority = update.Priority
		case "Type":
			goal.Type = update.Type
		case "SkipInPeriod":
			goal.SkipInPeriod = update.SkipInPeriod
		default:
			return fmt.Errorf("%w: %v", httputil.ErrInvalidBody, f)
		}
	}

	return nil
}

// @Summary		Delete goal
// @Description	Deletes a goal
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [delete]
func DeleteGoal(c *gin.Context) {
	deleteResource[models.Goal](c)
}

// @Summary		Deposit money
// @Description	Adds money to the current amount of a goal
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		404		{object}	httpError
// @Failure		500		{object}	GoalResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			deposit	body		DepositEditable	true	"Deposit"
// @Router			/v1/goals/{id}/deposits [post]
func CreateGoalDeposit(c *gin.Context) {
	goal, ok := getResource[models.Goal](c, models.DB)
	if !ok {
		return
	}

	var deposit DepositEditable
	err := httputil.BindData(c, &deposit)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &s,
		})
		return
	}

	if !deposit.Amount.IsPositive() {
		s := models.ErrGoalDepositAmountNotPositive.Error()
		c.JSON(http.StatusBadRequest, GoalResponse{
			Error: &s,
		})
		return
	}

	// The goal is read again in the transaction so that concurrent
	// deposits are all added
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&goal, goal.ID).Error
		if err != nil {
			return err
		}

		return tx.Model(&goal).Update("CurrentAmount", goal.CurrentAmount.Add(deposit.Amount)).Error
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &s,
		})
		return
	}

	r := newGoal(c, goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &r})
}
