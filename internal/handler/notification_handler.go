package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/CodeEntraHQ/codeentra-landing-page/internal/model"
	"github.com/CodeEntraHQ/codeentra-landing-page/pkg/database"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func ListNotifications(c echo.Context) error {
	var notifications []model.Notification
	err := database.GetDB().
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve notifications")
	}
	return OK(c, http.StatusOK, notifications, "Notifications fetched successfully")
}

func MarkNotificationAsRead(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return NewAPIError(http.StatusBadRequest, "ID is required and must be a valid ID")
	}

	var notification model.Notification
	err := database.GetDB().First(&notification, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound("Notification not found")
	}
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve notification")
	}

	notification.IsRead = true
	if err := database.GetDB().Save(&notification).Error; err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to update notification")
	}

	return OK(c, http.StatusOK, notification, "Notification marked as read")
}

func DeleteNotification(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return NewAPIError(http.StatusBadRequest, "ID is required and must be a valid ID")
	}

	result := database.GetDB().Delete(&model.Notification{}, "id = ?", id)
	if result.Error != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to delete notification")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound("Notification not found")
	}

	return OK(c, http.StatusOK, nil, "Notification deleted successfully")
}

func ClearAllNotifications(c echo.Context) error {
	if err := database.GetDB().Where("1 = 1").Delete(&model.Notification{}).Error; err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to clear notifications")
	}
	return OK(c, http.StatusOK, nil, "All notifications cleared")
}
