package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Ibrahim-Omar1/DNNDON/internal/apperrors"
	"github.com/Ibrahim-Omar1/DNNDON/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormNotificationRepository implements NotificationRepository over a
// GORM-managed PostgreSQL database.
type GormNotificationRepository struct {
	db *gorm.DB
}

var _ NotificationRepository = (*GormNotificationRepository)(nil)

// NewGormNotificationRepository creates a repository over db.
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Insert validates n, assigns defaults and stores it.
func (r *GormNotificationRepository) Insert(ctx context.Context, n models.Notification) (*models.Notification, error) {
	if err := validateRecord(n); err != nil {
		return nil, err
	}

	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Status == "" {
		n.Status = models.StatusInProgress
	}
	if n.DateTime.IsZero() {
		n.DateTime = time.Now()
	}

	if err := r.db.WithContext(ctx).Create(&n).Error; err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return &n, nil
}

// GetByID retrieves a record by id.
func (r *GormNotificationRepository) GetByID(ctx context.Context, id string) (*models.Notification, error) {
	var n models.Notification
	err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("notification %s not found", id)
		}
		return nil, apperrors.NewInternal(err)
	}
	return &n, nil
}

// UpdateByID merges the patch into the stored record and refreshes DateTime.
func (r *GormNotificationRepository) UpdateByID(ctx context.Context, id string, patch models.UpdateNotificationRequest) (*models.Notification, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	var n models.Notification
	err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("notification %s not found", id)
		}
		return nil, apperrors.NewInternal(err)
	}

	applyPatch(&n, patch)
	n.DateTime = time.Now()

	if err := r.db.WithContext(ctx).Save(&n).Error; err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return &n, nil
}

// RemoveByID deletes a record by id.
func (r *GormNotificationRepository) RemoveByID(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Notification{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.NewInternal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("notification %s not found", id)
	}
	return nil
}

// All returns every record, newest first.
func (r *GormNotificationRepository) All(ctx context.Context) ([]models.Notification, error) {
	var records []models.Notification
	err := r.db.WithContext(ctx).Order("date_time DESC").Find(&records).Error
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return records, nil
}
