package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"agroplan/internal/shared/errors"
	"agroplan/internal/shared/id"
)

// ParseSIDParam reads a prefixed public id (e.g. prg_xxxx) from a path parameter.
func ParseSIDParam(c *gin.Context, paramName, prefix, entityName string) (string, error) {
	sid := c.Param(paramName)
	if sid == "" {
		return "", errors.NewValidationError(entityName + " ID is required")
	}

	if err := id.ValidatePrefix(sid, prefix); err != nil {
		return "", errors.NewValidationError(
			fmt.Sprintf("invalid %s ID format, expected %s_xxxxx", entityName, prefix),
		)
	}

	return sid, nil
}

// ParseUintParam reads a numeric id from a path parameter.
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, errors.NewValidationError(fmt.Sprintf("invalid %s ID", entityName))
	}
	return uint(n), nil
}

// QueryUint returns the numeric query parameter, or nil when it is absent.
func QueryUint(c *gin.Context, key string) (*uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("%s must be a positive integer", key))
	}
	v := uint(n)
	return &v, nil
}
