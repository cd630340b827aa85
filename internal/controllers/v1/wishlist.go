package v1

import (
	"net/http"

	"github.com/finassist/backend/internal/httputil"
	"github.com/finassist/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterWishlistRoutes registers the routes for wishlist items with
// the RouterGroup that is passed.
func RegisterWishlistRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsWishlistItemList)
		r.GET("", GetWishlistItems)
		r.POST("", CreateWishlistItems)
	}

	// Wishlist item with ID
	{
		r.OPTIONS("/:id", OptionsWishlistItemDetail)
		r.GET("/:id", GetWishlistItem)
		r.PATCH("/:id", UpdateWishlistItem)
		r.DELETE("/:id", DeleteWishlistItem)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Wishlist
// @Success		204
// @Router			/v1/wishlist-items [options]
func OptionsWishlistItemList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Wishlist
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/wishlist-items/{id} [options]
func OptionsWishlistItemDetail(c *gin.Context) {
	resourceOptionsDetail[models.WishlistItem](c)
}

// @Summary		Create wishlist items
// @Description	Creates new wishlist items
// @Tags			Wishlist
// @Produce		json
// @Success		201		{object}	WishlistItemCreateResponse
// @Failure		400		{object}	WishlistItemCreateResponse
// @Failure		500		{object}	WishlistItemCreateResponse
// @Param			items	body		[]WishlistItemEditable	true	"Wishlist items"
// @Router			/v1/wishlist-items [post]
func CreateWishlistItems(c *gin.Context) {
	var editables []WishlistItemEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WishlistItemCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := WishlistItemCreateResponse{}

	for _, editable := range editables {
		item := editable.model()

		err = models.DB.Create(&item).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newWishlistItem(c, item)
		r.Data = append(r.Data, WishlistItemResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get wishlist items
// @Description	Returns a list of wishlist items, oldest first
// @Tags			Wishlist
// @Produce		json
// @Success		200	{object}	WishlistItemListResponse
// @Failure		400	{object}	WishlistItemListResponse
// @Failure		500	{object}	WishlistItemListResponse
// @Router			/v1/wishlist-items [get]
// @Param			name	query	string	false	"Filter by name, '*' matches any text"
// @Param			funded	query	bool	false	"Is the item fully saved for?"
// @Param			offset	query	uint	false	"The offset of the first item returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of items to return. Defaults to 50."
func GetWishlistItems(c *gin.Context) {
	var filter WishlistItemQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Older items are served first
	var items []models.WishlistItem
	err := models.DB.Order("created_at ASC").Find(&items).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WishlistItemListResponse{
			Error: &s,
		})
		return
	}

	if slices.Contains(setFields, "Funded") {
		items = slices.DeleteFunc(items, func(i models.WishlistItem) bool {
			return i.Finance().IsFunded() != filter.Funded
		})
	}

	items = filterName(items, filter.Name, func(i models.WishlistItem) string { return i.Name })
	items, pagination := paginate(items, filter.Offset, limit(setFields, filter.Limit))

	data := make([]WishlistItem, 0)
	for _, item := range items {
		data = append(data, newWishlistItem(c, item))
	}

	c.JSON(http.StatusOK, WishlistItemListResponse{
		Data:       data,
		Pagination: pagination,
	})
}

// @Summary		Get wishlist item
// @Description	Returns a specific wishlist item
// @Tags			Wishlist
// @Produce		json
// @Success		200	{object}	WishlistItemResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/wishlist-items/{id} [get]
func GetWishlistItem(c *gin.Context) {
	item, ok := getResource[models.WishlistItem](c, models.DB)
	if !ok {
		return
	}

	data := newWishlistItem(c, item)
	c.JSON(http.StatusOK, WishlistItemResponse{Data: &data})
}

// @Summary		Update wishlist item
// @Description	Update an existing wishlist item. Only values to be updated need to be specified.
// @Tags			Wishlist
// @Accept			json
// @Produce		json
// @Success		200		{object}	WishlistItemResponse
// @Failure		400		{object}	WishlistItemResponse
// @Failure		404		{object}	httpError
// @Failure		500		{object}	WishlistItemResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			item	body		WishlistItemEditable	true	"Wishlist item"
// @Router			/v1/wishlist-items/{id} [patch]
func UpdateWishlistItem(c *gin.Context) {
	item, ok := getResource[models.WishlistItem](c, models.DB)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, WishlistItemEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WishlistItemResponse{
			Error: &s,
		})
		return
	}

	var data WishlistItemEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WishlistItemResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&item).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WishlistItemResponse{
			Error: &s,
		})
		return
	}

	r := newWishlistItem(c, item)
	c.JSON(http.StatusOK, WishlistItemResponse{Data: &r})
}

// @Summary		Delete wishlist item
// @Description	Deletes a wishlist item
// @Tags			Wishlist
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/wishlist-items/{id} [delete]
func DeleteWishlistItem(c *gin.Context) {
	deleteResource[models.WishlistItem](c)
}
