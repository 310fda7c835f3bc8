package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Ibrahim-Omar1/DNNDON/internal/models"
)

// FixtureRecords returns the demo dataset the dashboard ships with: 15
// notifications spread across types, statuses and locations. Timestamps
// ascend with the index so insertion order is deterministic.
func FixtureRecords() []models.Notification {
	base := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)

	rows := []struct {
		typ     models.NotificationType
		space   string
		country string
		city    string
		status  models.NotificationStatus
	}{
		{models.TypePhoto, "Space A", "Egypt", "Cairo", models.StatusDelivered},
		{models.TypeText, "Space B", "Egypt", "Alexandria", models.StatusInProgress},
		{models.TypePhoto, "Space C", "Jordan", "Amman", models.StatusCancelled},
		{models.TypeText, "Space A", "Saudi Arabia", "Riyadh", models.StatusDelivered},
		{models.TypePhoto, "Space B", "Saudi Arabia", "Jeddah", models.StatusInProgress},
		{models.TypeText, "Space C", "UAE", "Dubai", models.StatusDelivered},
		{models.TypePhoto, "Space A", "UAE", "Abu Dhabi", models.StatusInProgress},
		{models.TypeText, "Space B", "Kuwait", "Kuwait City", models.StatusCancelled},
		{models.TypePhoto, "Space C", "Qatar", "Doha", models.StatusDelivered},
		{models.TypeText, "Space A", "Bahrain", "Manama", models.StatusInProgress},
		{models.TypePhoto, "Space B", "Oman", "Muscat", models.StatusDelivered},
		{models.TypeText, "Space C", "Lebanon", "Beirut", models.StatusCancelled},
		{models.TypePhoto, "Space A", "Morocco", "Rabat", models.StatusInProgress},
		{models.TypeText, "Space B", "Tunisia", "Tunis", models.StatusDelivered},
		{models.TypePhoto, "Space C", "Egypt", "Giza", models.StatusInProgress},
	}

	records := make([]models.Notification, len(rows))
	for i, row := range rows {
		records[i] = models.Notification{
			ID:       fmt.Sprintf("seed-%02d", i+1),
			Type:     row.typ,
			Space:    row.space,
			Country:  row.country,
			City:     row.city,
			DateTime: base.Add(time.Duration(i) * time.Hour),
			Status:   row.status,
		}
	}
	return records
}

// Seed inserts the fixture dataset into repo. Records are inserted oldest
// first so stores that prepend end up most-recent-first.
func Seed(ctx context.Context, repo NotificationRepository) error {
	for _, n := range FixtureRecords() {
		if _, err := repo.Insert(ctx, n); err != nil {
			return fmt.Errorf("seeding notification %s: %w", n.ID, err)
		}
	}
	return nil
}
