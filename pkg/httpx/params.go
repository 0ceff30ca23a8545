package httpx

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseLimitOffset — limit/offset из query-строки с дефолтами и границами.
// limit всегда в диапазоне [1, maxLimit], offset >= 0; нечисловые значения
// и отрицательный offset молча заменяются дефолтами.
func ParseLimitOffset(c *gin.Context, defaultLimit, maxLimit int) (limit, offset int) {
	limit = clamp(defaultLimit, 1, maxLimit)
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = clamp(v, 1, maxLimit)
		}
	}

	if raw := c.Query("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			offset = v
		}
	}
	return limit, offset
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
