package models

import "time"

// NotificationType classifies the delivery payload of a notification.
type NotificationType string

const (
	TypePhoto NotificationType = "Photo"
	TypeText  NotificationType = "Text"
)

// ValidType reports whether t is one of the known notification types.
func ValidType(t NotificationType) bool {
	switch t {
	case TypePhoto, TypeText:
		return true
	}
	return false
}

// NotificationStatus tracks the delivery lifecycle of a notification.
type NotificationStatus string

const (
	StatusDelivered  NotificationStatus = "Delivered"
	StatusInProgress NotificationStatus = "In Progress"
	StatusCancelled  NotificationStatus = "Cancelled"
)

// ValidStatus reports whether s is one of the known notification statuses.
func ValidStatus(s NotificationStatus) bool {
	switch s {
	case StatusDelivered, StatusInProgress, StatusCancelled:
		return true
	}
	return false
}

// Notification represents one notification record. IDs are assigned at
// creation and never change; DateTime is refreshed on every update.
type Notification struct {
	ID       string             `json:"id" bson:"_id" gorm:"primaryKey;size:36"`
	Type     NotificationType   `json:"type" bson:"type" gorm:"size:20;index"`
	Space    string             `json:"space" bson:"space"`
	Country  string             `json:"country" bson:"country" gorm:"index"`
	City     string             `json:"city" bson:"city"`
	DateTime time.Time          `json:"dateTime" bson:"date_time" gorm:"index"`
	Status   NotificationStatus `json:"status" bson:"status" gorm:"size:20;index"`
}

// CreateNotificationRequest is the payload for creating a notification.
// Status and the timestamp are optional; the store assigns defaults.
type CreateNotificationRequest struct {
	Type    NotificationType   `json:"type" validate:"required"`
	Space   string             `json:"space"`
	Country string             `json:"country" validate:"required"`
	City    string             `json:"city" validate:"required"`
	Status  NotificationStatus `json:"status"`
}

// UpdateNotificationRequest is a partial update. Nil fields are left
// untouched; the store refreshes DateTime on every update.
type UpdateNotificationRequest struct {
	Type    *NotificationType   `json:"type"`
	Space   *string             `json:"space"`
	Country *string             `json:"country"`
	City    *string             `json:"city"`
	Status  *NotificationStatus `json:"status"`
}
