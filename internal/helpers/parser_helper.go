package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// QueryInt reads an optional integer query parameter. A missing parameter
// yields nil; a malformed one yields an error.
func QueryInt(c *gin.Context, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
