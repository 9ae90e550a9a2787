package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"pokereview/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

var errIDMismatch = errors.New("path id does not match body id")

// writeError maps a service error onto the response status.
func writeError(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrDuplicateEntry):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrReferentialViolation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidRating):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "request timed out"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
	}
}

// pathID parses the :id segment, writing 400 when it is not a positive integer.
func pathID(c *gin.Context) (int64, bool) {
	return parseID(c, c.Param("id"), "id")
}

// queryID parses a required positive integer query parameter.
func queryID(c *gin.Context, name string) (int64, bool) {
	return parseID(c, c.Query(name), name)
}

func parseID(c *gin.Context, raw, name string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// bindUpdate decodes the body into in and checks that its id matches the path.
func bindUpdate(c *gin.Context, in interface{}, bodyID func() int64) (int64, bool) {
	id, ok := pathID(c)
	if !ok {
		return 0, false
	}
	if err := c.ShouldBindJSON(in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return 0, false
	}
	if bodyID() != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": errIDMismatch.Error()})
		return 0, false
	}
	return id, true
}
