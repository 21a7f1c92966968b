package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ecoride/helpdesk/internal/shared/errors"
)

// ParseIDParam parses and validates a numeric entity ID from a URL path
// parameter. entityName is used in error messages (e.g. "query", "entry").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || parsed == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}

	return uint(parsed), nil
}
