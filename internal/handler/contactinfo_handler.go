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

func ListContactInfo(c echo.Context) error {
	var entries []model.ContactInfo
	err := database.GetDB().
		Where("is_active = ?", true).
		Order("order_index ASC").
		Find(&entries).Error
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve contact info")
	}
	return OK(c, http.StatusOK, entries, "Contact info fetched successfully")
}

func ListContactInfoAdmin(c echo.Context) error {
	var entries []model.ContactInfo
	err := database.GetDB().
		Order("order_index ASC").
		Find(&entries).Error
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve contact info")
	}
	return OK(c, http.StatusOK, entries, "All contact info fetched successfully")
}

type ContactInfoRequest struct {
	Type       string `json:"type"`
	Label      string `json:"label"`
	Value      string `json:"value"`
	OrderIndex *int   `json:"orderIndex"`
	IsActive   *bool  `json:"isActive"`
}

func CreateContactInfo(c echo.Context) error {
	var req ContactInfoRequest
	if err := c.Bind(&req); err != nil {
		return NewAPIError(http.StatusBadRequest, "Invalid request data")
	}

	var errs fieldErrors
	checkRequired(&errs, req.Type, "Type")
	checkEnum(&errs, req.Type, "Type",
		model.ContactInfoTypeOffice, model.ContactInfoTypeEmail, model.ContactInfoTypePhone)
	checkRequired(&errs, req.Label, "Label")
	checkRequired(&errs, req.Value, "Value")
	if req.OrderIndex != nil {
		checkNonNegative(&errs, *req.OrderIndex, "Order Index")
	}
	if !errs.ok() {
		return ErrValidation(errs)
	}

	entry := model.ContactInfo{
		Type:     req.Type,
		Label:    strings.TrimSpace(req.Label),
		Value:    strings.TrimSpace(req.Value),
		IsActive: true,
	}
	if req.OrderIndex != nil {
		entry.OrderIndex = *req.OrderIndex
	}
	if req.IsActive != nil {
		entry.IsActive = *req.IsActive
	}

	if err := seqid.Create(database.GetDB(), &entry); err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to create contact info")
	}

	return OK(c, http.StatusCreated, entry, "Contact info created successfully")
}

func UpdateContactInfo(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return NewAPIError(http.StatusBadRequest, "ID is required and must be a valid ID")
	}

	var req ContactInfoRequest
	if err := c.Bind(&req); err != nil {
		return NewAPIError(http.StatusBadRequest, "Invalid request data")
	}

	var errs fieldErrors
	checkRequired(&errs, req.Type, "Type")
	checkEnum(&errs, req.Type, "Type",
		model.ContactInfoTypeOffice, model.ContactInfoTypeEmail, model.ContactInfoTypePhone)
	checkRequired(&errs, req.Label, "Label")
	checkRequired(&errs, req.Value, "Value")
	if !errs.ok() {
		return ErrValidation(errs)
	}

	var entry model.ContactInfo
	err := database.GetDB().First(&entry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound("Contact info not found")
	}
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve contact info")
	}

	entry.Type = req.Type
	entry.Label = strings.TrimSpace(req.Label)
	entry.Value = strings.TrimSpace(req.Value)
	if req.OrderIndex != nil {
		entry.OrderIndex = *req.OrderIndex
	}
	if req.IsActive != nil {
		entry.IsActive = *req.IsActive
	}

	if err := database.GetDB().Save(&entry).Error; err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to update contact info")
	}

	return OK(c, http.StatusOK, entry, "Contact info updated successfully")
}

func DeleteContactInfo(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return NewAPIError(http.StatusBadRequest, "ID is required and must be a valid ID")
	}

	result := database.GetDB().Delete(&model.ContactInfo{}, "id = ?", id)
	if result.Error != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to delete contact info")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound("Contact info not found")
	}

	return OK(c, http.StatusOK, nil, "Contact info deleted successfully")
}
