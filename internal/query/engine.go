// Package query implements list-parameter parsing and the in-memory
// filter/sort/paginate engine behind the notification list endpoint.
package query

import (
	"math"
	"sort"
	"strings"

	"github.com/Ibrahim-Omar1/DNNDON/internal/apperrors"
	"github.com/Ibrahim-Omar1/DNNDON/internal/models"
)

// ListMeta describes the pagination window of a ListResult.
type ListMeta struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	PageSize    int `json:"pageSize"`
	TotalCount  int `json:"totalCount"`
}

// ListResult is one page of matching records plus pagination metadata.
type ListResult struct {
	Data     []models.Notification `json:"data"`
	Metadata ListMeta              `json:"metadata"`
}

// Execute filters, sorts and paginates records according to q. The input
// slice is not modified. Records keep their relative order except where the
// sort key dictates otherwise (the sort is stable). A page past the last one
// yields an empty data slice, not an error.
func Execute(records []models.Notification, q ListQuery) (*ListResult, error) {
	page := q.Page
	if page <= 0 {
		page = DefaultPage
	}
	limit := q.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 0 {
		return nil, apperrors.NewValidation("limit must be positive, got %d", limit)
	}

	filtered := filter(records, q)

	if q.SortKey != "" {
		less := comparator(q.SortKey)
		if q.SortDir == OrderDesc {
			inner := less
			less = func(a, b models.Notification) bool { return inner(b, a) }
		}
		sort.SliceStable(filtered, func(i, j int) bool { return less(filtered[i], filtered[j]) })
	}

	totalCount := len(filtered)
	totalPages := int(math.Ceil(float64(totalCount) / float64(limit)))

	// Pages past the end yield an empty window. Checking against totalPages
	// first also keeps (page-1)*limit from overflowing for huge page numbers.
	start, end := 0, 0
	if page <= totalPages {
		start = (page - 1) * limit
		end = start + limit
		if end > totalCount {
			end = totalCount
		}
	}

	return &ListResult{
		Data: filtered[start:end],
		Metadata: ListMeta{
			CurrentPage: page,
			TotalPages:  totalPages,
			PageSize:    limit,
			TotalCount:  totalCount,
		},
	}, nil
}

// filter keeps records matching every present predicate: case-insensitive
// substring term over country, city and space; exact status; exact type.
func filter(records []models.Notification, q ListQuery) []models.Notification {
	term := strings.ToLower(q.Term)

	filtered := make([]models.Notification, 0, len(records))
	for _, r := range records {
		if term != "" && !matchesTerm(r, term) {
			continue
		}
		if q.Status != "" && r.Status != q.Status {
			continue
		}
		if q.Type != "" && r.Type != q.Type {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

func matchesTerm(r models.Notification, term string) bool {
	return strings.Contains(strings.ToLower(r.Country), term) ||
		strings.Contains(strings.ToLower(r.City), term) ||
		strings.Contains(strings.ToLower(r.Space), term)
}

func comparator(key string) func(a, b models.Notification) bool {
	switch key {
	case "type":
		return func(a, b models.Notification) bool { return a.Type < b.Type }
	case "space":
		return func(a, b models.Notification) bool { return a.Space < b.Space }
	case "country":
		return func(a, b models.Notification) bool { return a.Country < b.Country }
	case "city":
		return func(a, b models.Notification) bool { return a.City < b.City }
	case "status":
		return func(a, b models.Notification) bool { return a.Status < b.Status }
	case "dateTime":
		return func(a, b models.Notification) bool { return a.DateTime.Before(b.DateTime) }
	default:
		// ParseListQuery rejects unknown keys; direct callers get no-op order.
		return func(a, b models.Notification) bool { return false }
	}
}
