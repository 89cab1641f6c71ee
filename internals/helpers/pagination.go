// file: internals/helpers/pagination.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Paging: window hasil normalisasi query (?page= & ?limit=)
type Paging struct {
	Page  int
	Limit int
	Skip  int
}

// NormalizePaging: murni, tanpa ctx — dipakai ResolvePaging & unit test.
// page non-numerik / <1 → 1; limit non-numerik / <1 → defaultLimit;
// limit > maxLimit → maxLimit (maxLimit 0 = tanpa batas).
func NormalizePaging(pageStr, limitStr string, defaultLimit, maxLimit int) Paging {
	if defaultLimit < 1 {
		defaultLimit = DefaultLimit
	}

	page, err := strconv.Atoi(strings.TrimSpace(pageStr))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err := strconv.Atoi(strings.TrimSpace(limitStr))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	return Paging{
		Page:  page,
		Limit: limit,
		Skip:  (page - 1) * limit,
	}
}

// ResolvePaging membaca ?page= & ?limit= dari request dan normalisasi.
func ResolvePaging(c *fiber.Ctx) Paging {
	return NormalizePaging(c.Query("page"), c.Query("limit"), DefaultLimit, MaxLimit)
}

/* ===============================
   Pagination meta (kontrak publik: camelCase)
=================================*/

type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalRecords int64 `json:"totalRecords"`
	HasNextPage  bool  `json:"hasNextPage"`
	HasPrevPage  bool  `json:"hasPrevPage"`
	Limit        int   `json:"limit"`
}

// BuildPagination: totalPages = ceil(total/limit), 0 saat total 0.
// limit <= 0 dijaga supaya tidak pernah bagi nol.
func BuildPagination(total int64, p Paging) Pagination {
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	page := p.Page
	if page < 1 {
		page = 1
	}

	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit)) // ceil
	}

	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalRecords: total,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
		Limit:        limit,
	}
}
