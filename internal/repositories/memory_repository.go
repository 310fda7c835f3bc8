package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/Ibrahim-Omar1/DNNDON/internal/apperrors"
	"github.com/Ibrahim-Omar1/DNNDON/internal/models"
	"github.com/google/uuid"
)

// MemoryNotificationRepository is an in-memory NotificationRepository.
// Inserts prepend, so All is most-recent-first by construction. Mutations
// are serialized by a mutex so concurrent writers are safe.
type MemoryNotificationRepository struct {
	mu      sync.RWMutex
	records []models.Notification
	now     func() time.Time
}

var _ NotificationRepository = (*MemoryNotificationRepository)(nil)

// NewMemoryNotificationRepository creates an empty in-memory repository.
func NewMemoryNotificationRepository() *MemoryNotificationRepository {
	return &MemoryNotificationRepository{now: time.Now}
}

// Insert validates n, assigns id/status/timestamp defaults and prepends it.
func (r *MemoryNotificationRepository) Insert(ctx context.Context, n models.Notification) (*models.Notification, error) {
	if err := validateRecord(n); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Status == "" {
		n.Status = models.StatusInProgress
	}
	if n.DateTime.IsZero() {
		n.DateTime = r.now()
	}

	r.records = append([]models.Notification{n}, r.records...)
	return &n, nil
}

// GetByID returns the record with the given id.
func (r *MemoryNotificationRepository) GetByID(ctx context.Context, id string) (*models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, n := range r.records {
		if n.ID == id {
			record := n
			return &record, nil
		}
	}
	return nil, apperrors.NewNotFound("notification %s not found", id)
}

// UpdateByID merges the patch into the stored record and refreshes DateTime.
func (r *MemoryNotificationRepository) UpdateByID(ctx context.Context, id string, patch models.UpdateNotificationRequest) (*models.Notification, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID == id {
			applyPatch(&r.records[i], patch)
			r.records[i].DateTime = r.now()
			record := r.records[i]
			return &record, nil
		}
	}
	return nil, apperrors.NewNotFound("notification %s not found", id)
}

// RemoveByID deletes the record with the given id.
func (r *MemoryNotificationRepository) RemoveByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFound("notification %s not found", id)
}

// All returns a copy of the live record set, most recent first.
func (r *MemoryNotificationRepository) All(ctx context.Context) ([]models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]models.Notification, len(r.records))
	copy(records, r.records)
	return records, nil
}
