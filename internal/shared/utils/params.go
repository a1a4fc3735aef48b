package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/civicdesk/civicdesk/internal/shared/errors"
)

// ParseIDParam reads a positive integer id from a path parameter.
func ParseIDParam(c *gin.Context, paramName string) (uint, error) {
	raw := c.Param(paramName)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewFieldError(paramName, fmt.Sprintf("%s must be a positive integer", paramName))
	}
	return uint(id), nil
}

// QueryUint reads an optional positive integer query parameter.
// It returns nil when the parameter is absent or empty.
func QueryUint(c *gin.Context, key string) (*uint, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return nil, errors.NewFieldError(key, fmt.Sprintf("%s must be a positive integer", key))
	}
	id := uint(v)
	return &id, nil
}

// QueryIntInRange reads an optional integer query parameter bounded by
// [min, max]. def is returned when the parameter is absent or empty.
func QueryIntInRange(c *gin.Context, key string, def, min, max int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewFieldError(key, fmt.Sprintf("%s must be an integer", key))
	}
	if v < min || v > max {
		return 0, errors.NewFieldError(key, fmt.Sprintf("%s must be between %d and %d", key, min, max))
	}
	return v, nil
}
