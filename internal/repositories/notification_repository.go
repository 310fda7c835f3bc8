package repositories

import (
	"context"

	"github.com/Ibrahim-Omar1/DNNDON/internal/apperrors"
	"github.com/Ibrahim-Omar1/DNNDON/internal/models"
)

// NotificationRepository defines the record-store contract the query engine
// and handlers depend on. Implementations assign IDs, default statuses and
// timestamps on insert, and refresh DateTime on every update.
type NotificationRepository interface {
	Insert(ctx context.Context, n models.Notification) (*models.Notification, error)
	GetByID(ctx context.Context, id string) (*models.Notification, error)
	UpdateByID(ctx context.Context, id string, patch models.UpdateNotificationRequest) (*models.Notification, error)
	RemoveByID(ctx context.Context, id string) error
	// All returns the live record set, most recent first.
	All(ctx context.Context) ([]models.Notification, error)
}

// validateRecord enforces the insert contract: type, country and city are
// required, and enum fields must hold enumerated values.
func validateRecord(n models.Notification) error {
	if n.Type == "" {
		return apperrors.NewValidation("type is required")
	}
	if !models.ValidType(n.Type) {
		return apperrors.NewValidation("unknown type %q", n.Type)
	}
	if n.Country == "" {
		return apperrors.NewValidation("country is required")
	}
	if n.City == "" {
		return apperrors.NewValidation("city is required")
	}
	if n.Status != "" && !models.ValidStatus(n.Status) {
		return apperrors.NewValidation("unknown status %q", n.Status)
	}
	return nil
}

// validatePatch enforces enum membership on partial updates and rejects
// blanking out required fields.
func validatePatch(patch models.UpdateNotificationRequest) error {
	if patch.Type != nil && !models.ValidType(*patch.Type) {
		return apperrors.NewValidation("unknown type %q", *patch.Type)
	}
	if patch.Status != nil && !models.ValidStatus(*patch.Status) {
		return apperrors.NewValidation("unknown status %q", *patch.Status)
	}
	if patch.Country != nil && *patch.Country == "" {
		return apperrors.NewValidation("country is required")
	}
	if patch.City != nil && *patch.City == "" {
		return apperrors.NewValidation("city is required")
	}
	return nil
}

// applyPatch merges non-nil patch fields into n.
func applyPatch(n *models.Notification, patch models.UpdateNotificationRequest) {
	if patch.Type != nil {
		n.Type = *patch.Type
	}
	if patch.Space != nil {
		n.Space = *patch.Space
	}
	if patch.Country != nil {
		n.Country = *patch.Country
	}
	if patch.City != nil {
		n.City = *patch.City
	}
	if patch.Status != nil {
		n.Status = *patch.Status
	}
}
