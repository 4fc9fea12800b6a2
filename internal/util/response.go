package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// business error codes surfaced alongside the HTTP status
const (
	CodeOK           = 0
	CodeInvalidParam = 40001
	CodeServerErr    = 50001
)

// Error writes the error envelope used by every failure path.
func Error(c *gin.Context, httpStatus int, code int, msg string) {
	c.JSON(httpStatus, gin.H{
		"code":    code,
		"message": msg,
	})
}

// FieldError writes a client error enumerating the offending payload fields.
func FieldError(c *gin.Context, msg string, fields []string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"code":    CodeInvalidParam,
		"message": msg,
		"fields":  fields,
	})
}
