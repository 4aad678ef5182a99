package handler_test

import (
	"net/http"
	"testing"

	"github.com/CodeEntraHQ/codeentra-landing-page/internal/handler"
	"github.com/CodeEntraHQ/codeentra-landing-page/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitContactCreatesNotification(t *testing.T) {
	db := setupDB(t)

	body := `{"fullname":"Jane Smith","email":"jane@example.com","subject":"Quote","message":"Please call me back."}`
	rec, resp := call(t, handler.SubmitContact, jsonRequest(http.MethodPost, "/api/contact", body), nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	contactID := dataMap(t, resp)["id"].(string)

	var notification model.Notification
	require.NoError(t, db.First(&notification, "reference_id = ?", contactID).Error)
	assert.Equal(t, model.NotificationTypeContact, notification.Type)
	assert.Contains(t, notification.Message, "Jane Smith")
	assert.False(t, notification.IsRead)
}

func TestSubmitContactRejectsBadEmail(t *testing.T) {
	db := setupDB(t)

	body := `{"fullname":"Jane Smith","email":"not-an-email","subject":"Quote","message":"hello"}`
	rec, resp := call(t, handler.SubmitContact, jsonRequest(http.MethodPost, "/api/contact", body), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp.Errors, "Email must be a valid email address")

	var count int64
	require.NoError(t, db.Model(&model.Contact{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteContactRemovesNotification(t *testing.T) {
	db := setupDB(t)

	body := `{"fullname":"Jane Smith","email":"jane@example.com","subject":"Quote","message":"hello"}`
	_, resp := call(t, handler.SubmitContact, jsonRequest(http.MethodPost, "/api/contact", body), nil)
	contactID := dataMap(t, resp)["id"].(string)

	rec, _ := call(t, handler.DeleteContact, jsonRequest(http.MethodDelete, "/api/admin/contacts/"+contactID, ""), withParam("id", contactID))
	require.Equal(t, http.StatusOK, rec.Code)

	var contacts, notifications int64
	require.NoError(t, db.Model(&model.Contact{}).Count(&contacts).Error)
	require.NoError(t, db.Model(&model.Notification{}).Count(&notifications).Error)
	assert.Zero(t, contacts)
	assert.Zero(t, notifications)
}

func TestDeleteContactNotFound(t *testing.T) {
	setupDB(t)

	rec, _ := call(t, handler.DeleteContact, jsonRequest(http.MethodDelete, "/api/admin/contacts/usr099", ""), withParam("id", "usr099"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
