package v1

import (
	"github.com/finance-tracker/backend/internal/httputil"
	"github.com/finance-tracker/backend/internal/ledger"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/finance-tracker/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
//
// The resource must exist and be owned by the authenticated user.
func resourceOptionsDetail[R models.Category | models.Transaction](c *gin.Context, store ledger.Store) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = service.Authorize[R](c.Request.Context(), store, uri.ID.UUID, httputil.UserID(c))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}
