package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/tournament-standings-service/pkg/response"
)

// pathID parses a positive int64 path parameter, writing a 400 and reporting false otherwise.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.WriteInvalid(c, name, "must be a positive integer")
		return 0, false
	}
	return id, true
}

// optionalQueryID parses an optional int64 query parameter; nil when absent.
func optionalQueryID(c *gin.Context, name string) (*int64, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.WriteInvalid(c, name, "must be an integer")
		return nil, false
	}
	return &id, true
}
