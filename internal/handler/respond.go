package handler

import (
	"errors"
	"net/http"
	"strconv"

	"realty/internal/service"

	"github.com/gin-gonic/gin"
)

// writeError sends the API's {"error": msg} body
func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// writeWriteError maps a failed create/update/delete. Validation failures and
// storage rejections (e.g. a duplicate email) are both client errors here.
func writeWriteError(c *gin.Context, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		writeError(c, http.StatusBadRequest, verr.Error())
		return
	}
	writeError(c, http.StatusBadRequest, err.Error())
}

// bindFields decodes a partial update body. Keys the server owns are dropped.
func bindFields(c *gin.Context) (map[string]interface{}, bool) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return nil, false
	}
	delete(fields, "_id")
	delete(fields, "createdAt")
	return fields, true
}

// floatQuery parses an optional numeric query parameter. Missing or
// non-numeric values are treated as absent.
func floatQuery(c *gin.Context, key string) *float64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
