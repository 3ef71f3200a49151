package v1

import (
	"fmt"

	"github.com/finance-tracker/backend/internal/httputil"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// UserRegistration contains the data needed to register a user
type UserRegistration struct {
	Username string `json:"username" example:"alex"`          // Name shown for the user
	Email    string `json:"email" example:"alex@example.com"` // Email address, must be unique
	Password string `json:"password" example:"correct horse"` // Password, between 8 and 50 characters
}

type UserLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/users/me"` // The authenticated user
}

type User struct {
	models.DefaultModel
	Username string    `json:"username" example:"alex"`
	Email    string    `json:"email" example:"alex@example.com"`
	Links    UserLinks `json:"links"`
}

func newUser(c *gin.Context, model models.User) User {
	url := c.GetString(string(httputil.ContextURL))

	return User{
		DefaultModel: model.DefaultModel,
		Username:     model.Username,
		Email:        model.Email,
		Links: UserLinks{
			Self: fmt.Sprintf("%s/v1/users/me", url),
		},
	}
}

type UserResponse struct {
	Data  *User   `json:"data"`                                                // Data for the user
	Error *string `json:"error" example:"the email address is already in use"` // The error, if any occurred
}
