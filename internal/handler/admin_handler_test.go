package handler_test

import (
	"net/http"
	"testing"

	"github.com/CodeEntraHQ/codeentra-landing-page/internal/handler"
	"github.com/CodeEntraHQ/codeentra-landing-page/internal/model"
	"github.com/CodeEntraHQ/codeentra-landing-page/pkg/jwtutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func seedAdmin(t *testing.T, db *gorm.DB, password string) model.Admin {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	admin := model.Admin{Email: "admin@example.com", Password: string(hashed)}
	admin.ID = "admin001"
	require.NoError(t, db.Create(&admin).Error)
	return admin
}

func asAdmin(id string) func(echo.Context) {
	return func(c echo.Context) {
		c.Set("admin_id", id)
	}
}

func TestAdminLogin(t *testing.T) {
	db := setupDB(t)
	seedAdmin(t, db, "secret123")

	body := `{"email":"admin@example.com","password":"secret123"}`
	rec, resp := call(t, handler.AdminLogin, jsonRequest(http.MethodPost, "/api/auth/login", body), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	data := dataMap(t, resp)
	token := data["token"].(string)

	claims, err := jwtutil.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin001", claims.AdminID)
	assert.Equal(t, "admin@example.com", claims.Email)

	// The password hash never leaves the server.
	admin := data["admin"].(map[string]interface{})
	_, leaked := admin["password"]
	assert.False(t, leaked)
}

func TestAdminLoginWrongPassword(t *testing.T) {
	db := setupDB(t)
	seedAdmin(t, db, "secret123")

	body := `{"email":"admin@example.com","password":"wrong"}`
	rec, resp := call(t, handler.AdminLogin, jsonRequest(http.MethodPost, "/api/auth/login", body), nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, resp.Success)
}

func TestAdminLoginUnknownEmail(t *testing.T) {
	setupDB(t)

	body := `{"email":"nobody@example.com","password":"secret123"}`
	rec, _ := call(t, handler.AdminLogin, jsonRequest(http.MethodPost, "/api/auth/login", body), nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetAdminProfile(t *testing.T) {
	db := setupDB(t)
	seedAdmin(t, db, "secret123")

	rec, resp := call(t, handler.GetAdminProfile, jsonRequest(http.MethodGet, "/api/admin/profile", ""), asAdmin("admin001"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin@example.com", dataMap(t, resp)["email"])
}

func TestChangePassword(t *testing.T) {
	db := setupDB(t)
	seedAdmin(t, db, "secret123")

	body := `{"currentPassword":"secret123","newPassword":"evenmoresecret"}`
	rec, _ := call(t, handler.ChangePassword, jsonRequest(http.MethodPut, "/api/admin/change-password", body), asAdmin("admin001"))
	require.Equal(t, http.StatusOK, rec.Code)

	var stored model.Admin
	require.NoError(t, db.First(&stored, "id = ?", "admin001").Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("evenmoresecret")))
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	db := setupDB(t)
	seedAdmin(t, db, "secret123")

	body := `{"currentPassword":"wrong","newPassword":"evenmoresecret"}`
	rec, _ := call(t, handler.ChangePassword, jsonRequest(http.MethodPut, "/api/admin/change-password", body), asAdmin("admin001"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChangePasswordRejectsReuse(t *testing.T) {
	db := setupDB(t)
	seedAdmin(t, db, "secret123")

	body := `{"currentPassword":"secret123","newPassword":"secret123"}`
	rec, _ := call(t, handler.ChangePassword, jsonRequest(http.MethodPut, "/api/admin/change-password", body), asAdmin("admin001"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChangePasswordTooShort(t *testing.T) {
	db := setupDB(t)
	seedAdmin(t, db, "secret123")

	body := `{"currentPassword":"secret123","newPassword":"abc"}`
	rec, resp := call(t, handler.ChangePassword, jsonRequest(http.MethodPut, "/api/admin/change-password", body), asAdmin("admin001"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp.Errors, "New password must be at least 6 characters long")
}

func TestUpdateAdminEmail(t *testing.T) {
	db := setupDB(t)
	seedAdmin(t, db, "secret123")

	body := `{"newEmail":"new@example.com","password":"secret123"}`
	rec, resp := call(t, handler.UpdateAdminEmail, jsonRequest(http.MethodPut, "/api/admin/update-email", body), asAdmin("admin001"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "new@example.com", dataMap(t, resp)["email"])

	var stored model.Admin
	require.NoError(t, db.First(&stored, "id = ?", "admin001").Error)
	assert.Equal(t, "new@example.com", stored.Email)
}

func TestUpdateAdminEmailWrongPassword(t *testing.T) {
	db := setupDB(t)
	seedAdmin(t, db, "secret123")

	body := `{"newEmail":"new@example.com","password":"wrong"}`
	rec, _ := call(t, handler.UpdateAdminEmail, jsonRequest(http.MethodPut, "/api/admin/update-email", body), asAdmin("admin001"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
