package query

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/Ibrahim-Omar1/DNNDON/internal/apperrors"
	"github.com/Ibrahim-Omar1/DNNDON/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fifteenRecords builds a deterministic 15-record set, newest first, with a
// repeating mix of types and statuses.
func fifteenRecords() []models.Notification {
	statuses := []models.NotificationStatus{
		models.StatusDelivered, models.StatusInProgress, models.StatusCancelled,
	}
	types := []models.NotificationType{models.TypePhoto, models.TypeText}
	base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

	records := make([]models.Notification, 15)
	for i := range records {
		records[i] = models.Notification{
			ID:       fmt.Sprintf("n-%02d", i+1),
			Type:     types[i%2],
			Space:    fmt.Sprintf("Space %d", i%3),
			Country:  fmt.Sprintf("Country %d", i%5),
			City:     fmt.Sprintf("City %d", i),
			DateTime: base.Add(-time.Duration(i) * time.Hour),
			Status:   statuses[i%3],
		}
	}
	return records
}

func TestExecutePagination(t *testing.T) {
	records := fifteenRecords()

	page1, err := Execute(records, ListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, page1.Data, 10)
	assert.Equal(t, 1, page1.Metadata.CurrentPage)
	assert.Equal(t, 2, page1.Metadata.TotalPages)
	assert.Equal(t, 10, page1.Metadata.PageSize)
	assert.Equal(t, 15, page1.Metadata.TotalCount)

	page2, err := Execute(records, ListQuery{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, page2.Data, 5)
	assert.Equal(t, 2, page2.Metadata.CurrentPage)
}

func TestExecutePagesPartitionRecords(t *testing.T) {
	records := fifteenRecords()

	for _, limit := range []int{1, 3, 4, 7, 10, 15, 20} {
		first, err := Execute(records, ListQuery{Page: 1, Limit: limit})
		require.NoError(t, err)

		seen := 0
		for page := 1; page <= first.Metadata.TotalPages; page++ {
			result, err := Execute(records, ListQuery{Page: page, Limit: limit})
			require.NoError(t, err)
			seen += len(result.Data)
		}
		assert.Equal(t, len(records), seen, "limit %d", limit)
	}
}

func TestExecutePageBeyondEnd(t *testing.T) {
	records := fifteenRecords()

	result, err := Execute(records, ListQuery{Page: 9, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, result.Data)
	assert.Equal(t, 9, result.Metadata.CurrentPage)
	assert.Equal(t, 2, result.Metadata.TotalPages)
	assert.Equal(t, 15, result.Metadata.TotalCount)
}

func TestExecuteHugePageNumber(t *testing.T) {
	records := fifteenRecords()

	// Page numbers big enough to overflow (page-1)*limit still get the
	// past-the-end treatment: an empty window, not a panic.
	for _, page := range []int{1_000_000_000_000_000_000, math.MaxInt / 2, math.MaxInt} {
		result, err := Execute(records, ListQuery{Page: page, Limit: 10})
		require.NoError(t, err)
		assert.Empty(t, result.Data)
		assert.Equal(t, page, result.Metadata.CurrentPage)
		assert.Equal(t, 2, result.Metadata.TotalPages)
		assert.Equal(t, 15, result.Metadata.TotalCount)
	}
}

func TestExecuteEmptyInput(t *testing.T) {
	result, err := Execute(nil, ListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, result.Data)
	assert.Equal(t, 0, result.Metadata.TotalPages)
	assert.Equal(t, 0, result.Metadata.TotalCount)
}

func TestExecuteNegativeLimit(t *testing.T) {
	_, err := Execute(fifteenRecords(), ListQuery{Page: 1, Limit: -5})
	assert.True(t, apperrors.IsValidation(err))
}

func TestExecuteDefaults(t *testing.T) {
	// Zero page and limit fall back to the defaults table.
	result, err := Execute(fifteenRecords(), ListQuery{})
	require.NoError(t, err)
	assert.Len(t, result.Data, 10)
	assert.Equal(t, 1, result.Metadata.CurrentPage)
	assert.Equal(t, 10, result.Metadata.PageSize)
}

func TestExecuteStatusFilterPreservesOrder(t *testing.T) {
	records := fifteenRecords()

	result, err := Execute(records, ListQuery{Status: models.StatusDelivered, Page: 1, Limit: 50})
	require.NoError(t, err)
	require.NotEmpty(t, result.Data)

	// Only delivered records, in their original relative order.
	var wantIDs []string
	for _, r := range records {
		if r.Status == models.StatusDelivered {
			wantIDs = append(wantIDs, r.ID)
		}
	}
	gotIDs := make([]string, len(result.Data))
	for i, r := range result.Data {
		assert.Equal(t, models.StatusDelivered, r.Status)
		gotIDs[i] = r.ID
	}
	assert.Equal(t, wantIDs, gotIDs)
}

func TestExecuteTypeFilter(t *testing.T) {
	result, err := Execute(fifteenRecords(), ListQuery{Type: models.TypeText, Page: 1, Limit: 50})
	require.NoError(t, err)
	require.NotEmpty(t, result.Data)
	for _, r := range result.Data {
		assert.Equal(t, models.TypeText, r.Type)
	}
}

func TestExecuteTermIsCaseInsensitive(t *testing.T) {
	records := fifteenRecords()

	upper, err := Execute(records, ListQuery{Term: "COUNTRY 2", Page: 1, Limit: 50})
	require.NoError(t, err)
	lower, err := Execute(records, ListQuery{Term: "country 2", Page: 1, Limit: 50})
	require.NoError(t, err)

	require.NotEmpty(t, upper.Data)
	assert.Equal(t, upper.Data, lower.Data)
}

func TestExecuteTermMatchesCityAndSpace(t *testing.T) {
	records := []models.Notification{
		{ID: "a", Country: "Egypt", City: "Cairo", Space: "North"},
		{ID: "b", Country: "Jordan", City: "Amman", Space: "South"},
	}

	byCity, err := Execute(records, ListQuery{Term: "cai", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, byCity.Data, 1)
	assert.Equal(t, "a", byCity.Data[0].ID)

	bySpace, err := Execute(records, ListQuery{Term: "sou", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, bySpace.Data, 1)
	assert.Equal(t, "b", bySpace.Data[0].ID)
}

func TestExecuteFilterIsIdempotent(t *testing.T) {
	records := fifteenRecords()
	q := ListQuery{Term: "country 1", Status: models.StatusInProgress, Page: 1, Limit: 50}

	once, err := Execute(records, q)
	require.NoError(t, err)

	twice, err := Execute(once.Data, q)
	require.NoError(t, err)
	assert.Equal(t, once.Data, twice.Data)
}

func TestExecuteFiltersAreANDed(t *testing.T) {
	records := fifteenRecords()

	result, err := Execute(records, ListQuery{
		Type:   models.TypePhoto,
		Status: models.StatusDelivered,
		Page:   1,
		Limit:  50,
	})
	require.NoError(t, err)
	for _, r := range result.Data {
		assert.Equal(t, models.TypePhoto, r.Type)
		assert.Equal(t, models.StatusDelivered, r.Status)
	}
}

func TestExecuteSortAscDesc(t *testing.T) {
	records := fifteenRecords()

	asc, err := Execute(records, ListQuery{SortKey: "city", SortDir: OrderAsc, Page: 1, Limit: 50})
	require.NoError(t, err)
	for i := 1; i < len(asc.Data); i++ {
		assert.LessOrEqual(t, asc.Data[i-1].City, asc.Data[i].City)
	}

	desc, err := Execute(records, ListQuery{SortKey: "city", SortDir: OrderDesc, Page: 1, Limit: 50})
	require.NoError(t, err)
	for i := 1; i < len(desc.Data); i++ {
		assert.GreaterOrEqual(t, desc.Data[i-1].City, desc.Data[i].City)
	}
}

func TestExecuteSortIsStable(t *testing.T) {
	// All records share the same country; sorting by country must leave the
	// original relative order untouched.
	records := []models.Notification{
		{ID: "first", Country: "Egypt"},
		{ID: "second", Country: "Egypt"},
		{ID: "third", Country: "Egypt"},
	}

	result, err := Execute(records, ListQuery{SortKey: "country", SortDir: OrderAsc, Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, result.Data, 3)
	assert.Equal(t, "first", result.Data[0].ID)
	assert.Equal(t, "second", result.Data[1].ID)
	assert.Equal(t, "third", result.Data[2].ID)
}

func TestExecuteSortByDateTime(t *testing.T) {
	records := fifteenRecords()

	result, err := Execute(records, ListQuery{SortKey: "dateTime", SortDir: OrderAsc, Page: 1, Limit: 50})
	require.NoError(t, err)
	for i := 1; i < len(result.Data); i++ {
		assert.False(t, result.Data[i].DateTime.Before(result.Data[i-1].DateTime))
	}
}

func TestExecuteDoesNotMutateInput(t *testing.T) {
	records := fifteenRecords()
	firstID := records[0].ID

	_, err := Execute(records, ListQuery{SortKey: "city", SortDir: OrderDesc, Page: 1, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, firstID, records[0].ID)
}
