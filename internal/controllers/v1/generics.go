package v1

import (
	"fmt"
	"net/http"

	"github.com/finassist/backend/internal/httputil"
	"github.com/finassist/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type resource interface {
	models.Income | models.Bonus | models.Expense | models.Credit | models.Goal | models.WishlistItem
}

// getResource loads the resource with the ID from the URI. If that fails,
// the error response is written and ok is false.
func getResource[R resource](c *gin.Context, db *gorm.DB) (r R, ok bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return r, false
	}

	err = db.First(&r, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return r, false
	}

	return r, true
}

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
func resourceOptionsDetail[R resource](c *gin.Context) {
	if _, ok := getResource[R](c, models.DB); !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// deleteResource deletes the resource with the ID from the URI.
func deleteResource[R resource](c *gin.Context) {
	r, ok := getResource[R](c, models.DB)
	if !ok {
		return
	}

	err := models.DB.Delete(&r).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	log.Debug().Str("request-id", requestid.Get(c)).Str("resource", fmt.Sprintf("%T", r)).Msg("deleted")
	c.JSON(http.StatusNoContent, nil)
}
