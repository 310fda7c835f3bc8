package handlers

import (
	"net/http"

	"github.com/Ibrahim-Omar1/DNNDON/internal/apperrors"
	"github.com/Ibrahim-Omar1/DNNDON/internal/models"
	"github.com/Ibrahim-Omar1/DNNDON/internal/query"
	"github.com/Ibrahim-Omar1/DNNDON/internal/repositories"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// NotificationHandler handles notification-related HTTP requests.
type NotificationHandler struct {
	notificationRepository repositories.NotificationRepository
	log                    zerolog.Logger
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(repo repositories.NotificationRepository, log zerolog.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationRepository: repo,
		log:                    log,
	}
}

// RegisterNotificationRoutes registers notification routes.
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.ListNotifications)
	g.GET("/notifications/:id", h.GetNotification)
	g.POST("/notifications", h.CreateNotification)
	g.PUT("/notifications", h.UpdateNotification)
	g.DELETE("/notifications", h.DeleteNotification)
}

// ListNotifications returns a filtered, sorted, paginated page of records.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	q, err := query.ParseListQuery(c.QueryParams())
	if err != nil {
		return h.writeError(c, err)
	}

	records, err := h.notificationRepository.All(c.Request().Context())
	if err != nil {
		return h.writeError(c, err)
	}

	result, err := query.Execute(records, q)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// GetNotification retrieves a single record by ID.
func (h *NotificationHandler) GetNotification(c echo.Context) error {
	record, err := h.notificationRepository.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, record)
}

// CreateNotification inserts a new record and returns it.
func (h *NotificationHandler) CreateNotification(c echo.Context) error {
	var req models.CreateNotificationRequest
	if err := c.Bind(&req); err != nil {
		return h.writeError(c, apperrors.NewValidation("invalid request payload"))
	}
	if err := c.Validate(&req); err != nil {
		return h.writeError(c, err)
	}

	record, err := h.notificationRepository.Insert(c.Request().Context(), models.Notification{
		Type:    req.Type,
		Space:   req.Space,
		Country: req.Country,
		City:    req.City,
		Status:  req.Status,
	})
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, record)
}

// UpdateNotification applies a partial update to the record identified by
// the id query parameter and returns the updated record.
func (h *NotificationHandler) UpdateNotification(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return h.writeError(c, apperrors.NewValidation("id is required"))
	}

	var req models.UpdateNotificationRequest
	if err := c.Bind(&req); err != nil {
		return h.writeError(c, apperrors.NewValidation("invalid request payload"))
	}

	record, err := h.notificationRepository.UpdateByID(c.Request().Context(), id, req)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, record)
}

// DeleteNotification removes the record identified by the id query parameter.
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return h.writeError(c, apperrors.NewValidation("id is required"))
	}

	if err := h.notificationRepository.RemoveByID(c.Request().Context(), id); err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// writeError maps the error taxonomy to transport responses. Internal fault
// detail goes to the log, never to the caller.
func (h *NotificationHandler) writeError(c echo.Context, err error) error {
	switch {
	case apperrors.IsValidation(err):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case apperrors.IsNotFound(err):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
}
