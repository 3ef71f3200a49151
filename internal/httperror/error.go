// Package httperror contains the body for error responses sent by
// middlewares, outside of the API handlers.
package httperror

type Error struct {
	Message string `json:"error" example:"the request is not authenticated"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

func NewFromString(s string) Error {
	return Error{
		Message: s,
	}
}
