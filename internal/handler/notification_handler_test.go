package handler_test

import (
	"net/http"
	"testing"

	"github.com/CodeEntraHQ/codeentra-landing-page/internal/handler"
	"github.com/CodeEntraHQ/codeentra-landing-page/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkNotificationAsRead(t *testing.T) {
	db := setupDB(t)
	n := model.Notification{
		Base: model.Base{ID: "not001"}, Type: model.NotificationTypeContact,
		Message: "Jane Smith submitted contact form", ReferenceID: "usr001",
	}
	require.NoError(t, db.Create(&n).Error)

	rec, resp := call(t, handler.MarkNotificationAsRead, jsonRequest(http.MethodPut, "/api/admin/notifications/not001/read", ""), withParam("id", "not001"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, dataMap(t, resp)["isRead"])

	var stored model.Notification
	require.NoError(t, db.First(&stored, "id = ?", "not001").Error)
	assert.True(t, stored.IsRead)
}

func TestMarkNotificationAsReadNotFound(t *testing.T) {
	setupDB(t)

	rec, _ := call(t, handler.MarkNotificationAsRead, jsonRequest(http.MethodPut, "/api/admin/notifications/not099/read", ""), withParam("id", "not099"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClearAllNotifications(t *testing.T) {
	db := setupDB(t)
	for _, id := range []string{"not001", "not002", "not003"} {
		n := model.Notification{
			Base: model.Base{ID: id}, Type: model.NotificationTypeContact,
			Message: "m", ReferenceID: "usr001",
		}
		require.NoError(t, db.Create(&n).Error)
	}

	rec, _ := call(t, handler.ClearAllNotifications, jsonRequest(http.MethodDelete, "/api/admin/notifications", ""), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var count int64
	require.NoError(t, db.Model(&model.Notification{}).Count(&count).Error)
	assert.Zero(t, count)
}
