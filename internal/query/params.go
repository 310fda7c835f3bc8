package query

import (
	"net/url"
	"strconv"

	"github.com/Ibrahim-Omar1/DNNDON/internal/apperrors"
	"github.com/Ibrahim-Omar1/DNNDON/internal/models"
)

// Defaults applied when a list parameter is absent.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// ListQuery is one list request: free-text term, faceted filters, sort and
// pagination window. It is ephemeral and never persisted.
type ListQuery struct {
	Term    string
	Status  models.NotificationStatus
	Type    models.NotificationType
	SortKey string
	SortDir string
	Page    int
	Limit   int
}

var sortKeys = map[string]bool{
	"type":     true,
	"space":    true,
	"country":  true,
	"city":     true,
	"dateTime": true,
	"status":   true,
}

// ParseListQuery builds a ListQuery from URL query parameters, applying the
// defaults table {page: 1, limit: 10, order: asc}. Non-numeric page/limit,
// out-of-enum filters, unknown sort keys and non-positive limits are
// ValidationErrors.
func ParseListQuery(values url.Values) (ListQuery, error) {
	q := ListQuery{
		Term:    values.Get("query"),
		SortKey: values.Get("sort"),
		SortDir: values.Get("order"),
		Page:    DefaultPage,
		Limit:   DefaultLimit,
	}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return ListQuery{}, apperrors.NewValidation("invalid page %q", raw)
		}
		if page > 0 {
			q.Page = page
		}
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return ListQuery{}, apperrors.NewValidation("invalid limit %q", raw)
		}
		if limit <= 0 {
			return ListQuery{}, apperrors.NewValidation("limit must be positive, got %d", limit)
		}
		if limit > MaxLimit {
			limit = MaxLimit
		}
		q.Limit = limit
	}

	if raw := values.Get("status"); raw != "" {
		status := models.NotificationStatus(raw)
		if !models.ValidStatus(status) {
			return ListQuery{}, apperrors.NewValidation("unknown status %q", raw)
		}
		q.Status = status
	}

	if raw := values.Get("type"); raw != "" {
		typ := models.NotificationType(raw)
		if !models.ValidType(typ) {
			return ListQuery{}, apperrors.NewValidation("unknown type %q", raw)
		}
		q.Type = typ
	}

	if q.SortKey != "" && !sortKeys[q.SortKey] {
		return ListQuery{}, apperrors.NewValidation("unknown sort key %q", q.SortKey)
	}

	switch q.SortDir {
	case "":
		q.SortDir = OrderAsc
	case OrderAsc, OrderDesc:
	default:
		return ListQuery{}, apperrors.NewValidation("order must be %q or %q", OrderAsc, OrderDesc)
	}

	return q, nil
}

// Values is the inverse of ParseListQuery: it encodes the query so the same
// view can be reproduced from the resulting query string. Page and limit are
// always present; optional parameters are omitted when unset.
func (q ListQuery) Values() url.Values {
	values := url.Values{}
	values.Set("page", strconv.Itoa(q.Page))
	values.Set("limit", strconv.Itoa(q.Limit))
	if q.Term != "" {
		values.Set("query", q.Term)
	}
	if q.Status != "" {
		values.Set("status", string(q.Status))
	}
	if q.Type != "" {
		values.Set("type", string(q.Type))
	}
	if q.SortKey != "" {
		values.Set("sort", q.SortKey)
		values.Set("order", q.SortDir)
	}
	return values
}
