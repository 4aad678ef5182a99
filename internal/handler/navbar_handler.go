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

func ListNavbarItems(c echo.Context) error {
	var items []model.NavbarItem
	err := database.GetDB().
		Where("is_active = ?", true).
		Order("order_index ASC").
		Find(&items).Error
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve navbar items")
	}
	return OK(c, http.StatusOK, items, "Navbar items fetched successfully")
}

func ListNavbarItemsAdmin(c echo.Context) error {
	var items []model.NavbarItem
	err := database.GetDB().
		Order("order_index ASC").
		Find(&items).Error
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve navbar items")
	}
	return OK(c, http.StatusOK, items, "All navbar items fetched successfully")
}

type NavbarItemRequest struct {
	Label      string `json:"label"`
	URL        string `json:"url"`
	OrderIndex *int   `json:"orderIndex"`
	IsActive   *bool  `json:"isActive"`
}

func CreateNavbarItem(c echo.Context) error {
	var req NavbarItemRequest
	if err := c.Bind(&req); err != nil {
		return NewAPIError(http.StatusBadRequest, "Invalid request data")
	}

	var errs fieldErrors
	checkRequired(&errs, req.Label, "Label")
	checkRequired(&errs, req.URL, "URL")
	checkURL(&errs, req.URL, "URL")
	if req.OrderIndex != nil {
		checkNonNegative(&errs, *req.OrderIndex, "Order Index")
	}
	if !errs.ok() {
		return ErrValidation(errs)
	}

	item := model.NavbarItem{
		Label:    strings.TrimSpace(req.Label),
		URL:      strings.TrimSpace(req.URL),
		IsActive: true,
	}
	if req.OrderIndex != nil {
		item.OrderIndex = *req.OrderIndex
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := seqid.Create(database.GetDB(), &item); err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to create navbar item")
	}

	return OK(c, http.StatusCreated, item, "Navbar item created successfully")
}

func UpdateNavbarItem(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return NewAPIError(http.StatusBadRequest, "ID is required and must be a valid ID")
	}

	var req NavbarItemRequest
	if err := c.Bind(&req); err != nil {
		return NewAPIError(http.StatusBadRequest, "Invalid request data")
	}

	var errs fieldErrors
	checkRequired(&errs, req.Label, "Label")
	checkRequired(&errs, req.URL, "URL")
	checkURL(&errs, req.URL, "URL")
	if !errs.ok() {
		return ErrValidation(errs)
	}

	var item model.NavbarItem
	err := database.GetDB().First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound("Navbar item not found")
	}
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve navbar item")
	}

	item.Label = strings.TrimSpace(req.Label)
	item.URL = strings.TrimSpace(req.URL)
	if req.OrderIndex != nil {
		item.OrderIndex = *req.OrderIndex
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := database.GetDB().Save(&item).Error; err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to update navbar item")
	}

	return OK(c, http.StatusOK, item, "Navbar item updated successfully")
}

func DeleteNavbarItem(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return NewAPIError(http.StatusBadRequest, "ID is required and must be a valid ID")
	}

	result := database.GetDB().Delete(&model.NavbarItem{}, "id = ?", id)
	if result.Error != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to delete navbar item")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound("Navbar item not found")
	}

	return OK(c, http.StatusOK, nil, "Navbar item deleted successfully")
}
