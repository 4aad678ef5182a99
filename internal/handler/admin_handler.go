package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/CodeEntraHQ/codeentra-landing-page/internal/model"
	"github.com/CodeEntraHQ/codeentra-landing-page/internal/upload"
	"github.com/CodeEntraHQ/codeentra-landing-page/pkg/database"
	"github.com/CodeEntraHQ/codeentra-landing-page/pkg/jwtutil"
	"github.com/CodeEntraHQ/codeentra-landing-page/pkg/logger"
	"github.com/CodeEntraHQ/codeentra-landing-page/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var photoStore *upload.Store

// InitUploadStore wires the profile photo store used by the upload handlers.
func InitUploadStore(store *upload.Store) {
	photoStore = store
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	Admin *model.Admin `json:"admin"`
}

// AdminLogin checks credentials against the single admin row and issues a JWT.
func AdminLogin(c echo.Context) error {
	log := logger.FromEcho(c)

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return NewAPIError(http.StatusBadRequest, "Invalid request data")
	}

	var errs fieldErrors
	checkRequired(&errs, req.Email, "Email")
	checkRequired(&errs, req.Password, "Password")
	if !errs.ok() {
		return ErrValidation(errs)
	}

	var admin model.Admin
	err := database.GetDB().Where("email = ?", strings.TrimSpace(req.Email)).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		prometheus.RecordAuthError("invalid_credentials")
		return NewAPIError(http.StatusUnauthorized, "Invalid email or password")
	}
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Login failed")
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
		prometheus.RecordAuthError("invalid_credentials")
		return NewAPIError(http.StatusUnauthorized, "Invalid email or password")
	}

	token, err := jwtutil.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		log.Error("Failed to sign token", zap.Error(err))
		return NewAPIError(http.StatusInternalServerError, "Login failed")
	}

	log.Info("Admin logged in", zap.String("admin_id", admin.ID))
	return OK(c, http.StatusOK, LoginResponse{Token: token, Admin: &admin}, "Login successful")
}

func currentAdmin(c echo.Context) (*model.Admin, error) {
	adminID, _ := c.Get("admin_id").(string)
	if adminID == "" {
		return nil, NewAPIError(http.StatusUnauthorized, "Unauthorized")
	}

	var admin model.Admin
	err := database.GetDB().First(&admin, "id = ?", adminID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound("Admin not found")
	}
	if err != nil {
		return nil, NewAPIError(http.StatusInternalServerError, "Failed to retrieve admin")
	}
	return &admin, nil
}

// GetAdminProfile returns the authenticated admin.
func GetAdminProfile(c echo.Context) error {
	admin, err := currentAdmin(c)
	if err != nil {
		return err
	}
	return OK(c, http.StatusOK, admin, "Admin profile fetched successfully")
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword verifies the current password before replacing it.
func ChangePassword(c echo.Context) error {
	log := logger.FromEcho(c)

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return NewAPIError(http.StatusBadRequest, "Invalid request data")
	}

	var errs fieldErrors
	checkRequired(&errs, req.CurrentPassword, "Current password")
	checkRequired(&errs, req.NewPassword, "New password")
	checkMinLen(&errs, req.NewPassword, "New password", 6)
	if !errs.ok() {
		return ErrValidation(errs)
	}

	admin, err := currentAdmin(c)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.CurrentPassword)) != nil {
		prometheus.RecordAuthError("wrong_password")
		return NewAPIError(http.StatusUnauthorized, "Current password is incorrect")
	}
	if req.CurrentPassword == req.NewPassword {
		return NewAPIError(http.StatusBadRequest, "New password must be different from the current password")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to change password")
	}

	admin.Password = string(hashed)
	if err := database.GetDB().Save(admin).Error; err != nil {
		log.Error("Failed to change password", zap.Error(err))
		return NewAPIError(http.StatusInternalServerError, "Failed to change password")
	}

	log.Info("Admin password changed", zap.String("admin_id", admin.ID))
	return OK(c, http.StatusOK, nil, "Password changed successfully")
}

type UpdateEmailRequest struct {
	NewEmail string `json:"newEmail"`
	Password string `json:"password"`
}

// UpdateAdminEmail changes the login email after re-verifying the password.
func UpdateAdminEmail(c echo.Context) error {
	log := logger.FromEcho(c)

	var req UpdateEmailRequest
	if err := c.Bind(&req); err != nil {
		return NewAPIError(http.StatusBadRequest, "Invalid request data")
	}

	var errs fieldErrors
	checkRequired(&errs, req.NewEmail, "New email")
	checkEmail(&errs, req.NewEmail, "New email")
	checkRequired(&errs, req.Password, "Password")
	if !errs.ok() {
		return ErrValidation(errs)
	}

	admin, err := currentAdmin(c)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
		prometheus.RecordAuthError("wrong_password")
		return NewAPIError(http.StatusUnauthorized, "Password is incorrect")
	}

	admin.Email = strings.TrimSpace(req.NewEmail)
	err = database.GetDB().Save(admin).Error
	if err != nil {
		log.Error("Failed to update admin email", zap.Error(err))
		return NewAPIError(http.StatusInternalServerError, "Failed to update email")
	}

	log.Info("Admin email updated", zap.String("admin_id", admin.ID))
	return OK(c, http.StatusOK, admin, "Email updated successfully")
}

// UploadProfilePhoto replaces the admin profile photo. The old file is removed
// best effort after the new path is stored.
func UploadProfilePhoto(c echo.Context) error {
	log := logger.FromEcho(c)

	if photoStore == nil {
		return NewAPIError(http.StatusInternalServerError, "Upload storage is not configured")
	}

	admin, err := currentAdmin(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("profilePhoto")
	if err != nil {
		return NewAPIError(http.StatusBadRequest, "Profile photo file is required")
	}

	src, err := file.Open()
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to read uploaded file")
	}
	defer src.Close()

	publicPath, err := photoStore.Save(src, file.Filename)
	if err != nil {
		log.Error("Failed to store profile photo", zap.Error(err))
		return NewAPIError(http.StatusInternalServerError, "Failed to upload profile photo")
	}

	oldPath := admin.ProfilePhoto
	admin.ProfilePhoto = &publicPath
	if err := database.GetDB().Save(admin).Error; err != nil {
		log.Error("Failed to save profile photo path", zap.Error(err))
		return NewAPIError(http.StatusInternalServerError, "Failed to upload profile photo")
	}

	if oldPath != nil {
		if err := photoStore.Remove(*oldPath); err != nil {
			log.Warn("Failed to remove previous profile photo", zap.String("path", *oldPath), zap.Error(err))
		}
	}

	return OK(c, http.StatusOK, admin, "Profile photo uploaded successfully")
}

// DeleteProfilePhoto clears the stored photo path and removes the file.
func DeleteProfilePhoto(c echo.Context) error {
	log := logger.FromEcho(c)

	admin, err := currentAdmin(c)
	if err != nil {
		return err
	}

	if admin.ProfilePhoto == nil {
		return ErrNotFound("No profile photo to delete")
	}

	oldPath := *admin.ProfilePhoto
	admin.ProfilePhoto = nil
	if err := database.GetDB().Save(admin).Error; err != nil {
		log.Error("Failed to clear profile photo", zap.Error(err))
		return NewAPIError(http.StatusInternalServerError, "Failed to delete profile photo")
	}

	if photoStore != nil {
		if err := photoStore.Remove(oldPath); err != nil {
			log.Warn("Failed to remove profile photo file", zap.String("path", oldPath), zap.Error(err))
		}
	}

	return OK(c, http.StatusOK, admin, "Profile photo deleted successfully")
}
