package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/CodeEntraHQ/codeentra-landing-page/internal/model"
	"github.com/CodeEntraHQ/codeentra-landing-page/internal/seqid"
	"github.com/CodeEntraHQ/codeentra-landing-page/pkg/database"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func ListUpdates(c echo.Context) error {
	var updates []model.Update
	err := database.GetDB().
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&updates).Error
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve updates")
	}
	return OK(c, http.StatusOK, updates, "Updates fetched successfully")
}

func ListUpdatesAdmin(c echo.Context) error {
	var updates []model.Update
	err := database.GetDB().
		Order("created_at DESC").
		Find(&updates).Error
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve updates")
	}
	return OK(c, http.StatusOK, updates, "All updates fetched successfully")
}

type UpdateRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Type        *string `json:"type"`
	IsActive    *bool   `json:"isActive"`
}

func CreateUpdate(c echo.Context) error {
	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return NewAPIError(http.StatusBadRequest, "Invalid request data")
	}

	var errs fieldErrors
	checkRequired(&errs, req.Title, "Title")
	checkRequired(&errs, req.Description, "Description")
	if req.Type != nil {
		checkEnum(&errs, *req.Type, "Type", "announcement", "news", "update", "feature")
	}
	if !errs.ok() {
		return ErrValidation(errs)
	}

	update := model.Update{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Type:        "announcement",
		IsActive:    true,
	}
	if req.Type != nil {
		update.Type = *req.Type
	}
	if req.IsActive != nil {
		update.IsActive = *req.IsActive
	}

	if err := seqid.Create(database.GetDB(), &update); err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to create update")
	}

	return OK(c, http.StatusCreated, update, "Update created successfully")
}

func UpdateUpdate(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return NewAPIError(http.StatusBadRequest, "ID is required and must be a valid ID")
	}

	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return NewAPIError(http.StatusBadRequest, "Invalid request data")
	}

	var errs fieldErrors
	checkRequired(&errs, req.Title, "Title")
	checkRequired(&errs, req.Description, "Description")
	if req.Type != nil {
		checkEnum(&errs, *req.Type, "Type", "announcement", "news", "update", "feature")
	}
	if !errs.ok() {
		return ErrValidation(errs)
	}

	var update model.Update
	err := database.GetDB().First(&update, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound("Update not found")
	}
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve update")
	}

	update.Title = strings.TrimSpace(req.Title)
	update.Description = strings.TrimSpace(req.Description)
	if req.Type != nil {
		update.Type = *req.Type
	}
	if req.IsActive != nil {
		update.IsActive = *req.IsActive
	}

	if err := database.GetDB().Save(&update).Error; err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to update update")
	}

	return OK(c, http.StatusOK, update, "Update updated successfully")
}

func DeleteUpdate(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return NewAPIError(http.StatusBadRequest, "ID is required and must be a valid ID")
	}

	result := database.GetDB().Delete(&model.Update{}, "id = ?", id)
	if result.Error != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to delete update")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound("Update not found")
	}

	return OK(c, http.StatusOK, nil, "Update deleted successfully")
}
