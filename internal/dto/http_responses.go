package dto

import (
	"github.com/wb-go/wbf/ginext"
)

const (
	FieldIncorrect     = "FIELD_INCORRECT"
	Unauthorized       = "UNAUTHORIZED"
	NotFound           = "NOT_FOUND"
	ServiceUnavailable = "SERVICE_UNAVAILABLE"
	InternalError      = "Service is currently unavailable. Please try again later."
)

type CreateGuestbookRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=60"`
	Message string `json:"message" validate:"required,min=1,max=800"`
}

type CreateRSVPRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=60"`
	Contact string `json:"contact" validate:"required,min=3,max=80"`
	Attend  string `json:"attend" validate:"required,min=2,max=10"`
	People  int    `json:"people" validate:"min=1,max=20"`
	Memo    string `json:"memo" validate:"max=300"`
}

type Response struct {
	OK    bool   `json:"ok"`
	ID    int64  `json:"id,omitempty"`
	Items any    `json:"items,omitempty"`
	Error *Error `json:"error,omitempty"`
}

type Error struct {
	Code string `json:"code"`
	Desc string `json:"desc"`
}

func SuccessResponse(c *ginext.Context) {
	c.JSON(200, Response{OK: true})
}

func SuccessIDResponse(c *ginext.Context, id int64) {
	c.JSON(200, Response{OK: true, ID: id})
}

func SuccessItemsResponse(c *ginext.Context, items any) {
	c.JSON(200, Response{OK: true, Items: items})
}

func BadResponseError(c *ginext.Context, code, desc string) {
	c.JSON(400, Response{
		Error: &Error{
			Code: code,
			Desc: desc,
		},
	})
}

// UnauthorizedError aborts the handler chain so guarded handlers never run.
func UnauthorizedError(c *ginext.Context) {
	c.AbortWithStatusJSON(401, Response{
		Error: &Error{
			Code: Unauthorized,
			Desc: "Unauthorized",
		},
	})
}

func NotFoundError(c *ginext.Context) {
	c.JSON(404, Response{
		Error: &Error{
			Code: NotFound,
			Desc: "Not found",
		},
	})
}

func InternalServerError(c *ginext.Context) {
	c.JSON(500, Response{
		Error: &Error{
			Code: ServiceUnavailable,
			Desc: InternalError,
		},
	})
}
