// Package response renders the JSON envelope every endpoint speaks:
// {success, message?, data}. List payloads nest pagination metadata next
// to the resource array, e.g. {page, lastPage, limit, total, categories: [...]}.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the top-level response shape
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ListMeta carries server-side pagination state for list reads
type ListMeta struct {
	Page     int `json:"page"`
	LastPage int `json:"lastPage"`
	Limit    int `json:"limit"`
	Total    int `json:"total"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    data,
	})
}

func SuccessMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Data:    data,
	})
}

// List renders a paginated collection. itemsKey names the resource array
// inside data ("categories", "menuItems", ...), matching the admin console's
// expectations.
func List(c *gin.Context, meta ListMeta, itemsKey string, items interface{}) {
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data: gin.H{
			"page":     meta.Page,
			"lastPage": meta.LastPage,
			"limit":    meta.Limit,
			"total":    meta.Total,
			itemsKey:   items,
		},
	})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{
		Success: false,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

func InternalError(c *gin.Context, err error) {
	Error(c, http.StatusInternalServerError, "Internal Server Error: "+err.Error())
}
