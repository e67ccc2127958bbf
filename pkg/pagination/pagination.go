package pagination

import (
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params is an inclusive index window over an ordered listing. Clients send
// either start/stop indexes directly or page/limit, which is converted.
type Params struct {
	Page  int
	Limit int
	Start int
	Stop  int
}

// Metadata holds pagination metadata.
type Metadata struct {
	TotalItems  int64 `json:"totalItems"`
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// Extract reads pagination parameters from the request query string. An
// explicit start wins over page; the window never exceeds MaxLimit items.
func Extract(c *gin.Context) Params {
	if raw := strings.TrimSpace(c.Query("start")); raw != "" {
		return FromRange(parseInt(raw, 0), parseInt(c.Query("stop"), -1))
	}

	page := parseInt(c.Query("page"), DefaultPage)
	limit := parseInt(c.Query("limit"), DefaultLimit)
	return FromPage(page, limit)
}

// FromPage converts a 1-based page and size to an index window.
func FromPage(page, limit int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	start := (page - 1) * limit
	return Params{Page: page, Limit: limit, Start: start, Stop: start + limit - 1}
}

// FromRange clamps a start/stop window. A negative or oversized stop means
// "MaxLimit items from start".
func FromRange(start, stop int) Params {
	if start < 0 {
		start = 0
	}
	if stop < start || stop-start+1 > MaxLimit {
		stop = start + MaxLimit - 1
	}

	limit := stop - start + 1
	return Params{Page: start/limit + 1, Limit: limit, Start: start, Stop: stop}
}

// MetadataFrom builds response metadata given totals.
func MetadataFrom(total int64, params Params) Metadata {
	totalPages := 0
	if params.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(params.Limit)))
	}

	return Metadata{
		TotalItems:  total,
		CurrentPage: params.Page,
		PageSize:    params.Limit,
		TotalPages:  totalPages,
		HasNextPage: int64(params.Stop+1) < total,
		HasPrevPage: params.Start > 0,
	}
}

func parseInt(value string, fallback int) int {
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}

	return parsed
}
