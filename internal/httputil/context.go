package httputil

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ContextKey string

const (
	ContextURL    ContextKey = "baseURL"
	ContextUserID ContextKey = "userID"
)

// UserID returns the ID of the authenticated user, uuid.Nil if the
// request is not authenticated.
func UserID(c *gin.Context) uuid.UUID {
	id, ok := c.Get(string(ContextUserID))
	if !ok {
		return uuid.Nil
	}

	u, ok := id.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}

	return u
}
