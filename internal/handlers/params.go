package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/devdecrux/pocketr_api/internal/dto"
)

// today returns the current calendar date in UTC.
func today() time.Time {
	return dto.NewLocalDate(time.Now()).Time
}

// queryDate parses an optional YYYY-MM-DD query parameter, defaulting to today.
func queryDate(c *gin.Context, key string) (time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return today(), nil
	}
	t, err := time.Parse(dto.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be a date in YYYY-MM-DD format", key)
	}
	return t, nil
}

// pathUUID returns the named path parameter, requiring it to be a UUID.
func pathUUID(c *gin.Context, key, label string) (string, error) {
	raw := c.Param(key)
	if _, err := uuid.Parse(raw); err != nil {
		return "", fmt.Errorf("%s must be a UUID", label)
	}
	return raw, nil
}

// queryOptionalUUID returns nil when key is absent.
func queryOptionalUUID(c *gin.Context, key string) (*string, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	if _, err := uuid.Parse(raw); err != nil {
		return nil, fmt.Errorf("%s must be a UUID", key)
	}
	return &raw, nil
}

// queryUUIDList accepts both repeated keys and comma-separated values.
func queryUUIDList(c *gin.Context, key string) ([]string, error) {
	var ids []string
	for _, raw := range c.QueryArray(key) {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if _, err := uuid.Parse(part); err != nil {
				return nil, fmt.Errorf("%s must contain only UUIDs, got %q", key, part)
			}
			ids = append(ids, part)
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%s is required", key)
	}
	return ids, nil
}
