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

func ListFooterItems(c echo.Context) error {
	var items []model.FooterItem
	err := database.GetDB().
		Where("is_active = ?", true).
		Order("section ASC, order_index ASC").
		Find(&items).Error
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve footer items")
	}
	return OK(c, http.StatusOK, items, "Footer items fetched successfully")
}

func ListFooterItemsAdmin(c echo.Context) error {
	var items []model.FooterItem
	err := database.GetDB().
		Order("section ASC, order_index ASC").
		Find(&items).Error
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve footer items")
	}
	return OK(c, http.StatusOK, items, "All footer items fetched successfully")
}

type FooterItemRequest struct {
	Section    string  `json:"section"`
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	URL        *string `json:"url"`
	Icon       *string `json:"icon"`
	OrderIndex *int    `json:"orderIndex"`
	IsActive   *bool   `json:"isActive"`
}

func (r *FooterItemRequest) validate() fieldErrors {
	var errs fieldErrors
	checkRequired(&errs, r.Section, "Section")
	checkEnum(&errs, r.Section, "Section",
		model.FooterSectionCompany, model.FooterSectionServices,
		model.FooterSectionCompanyLinks, model.FooterSectionSocial,
		model.FooterSectionCopyright)
	if r.URL != nil && strings.TrimSpace(*r.URL) != "" {
		checkURL(&errs, *r.URL, "URL")
	}
	if r.OrderIndex != nil {
		checkNonNegative(&errs, *r.OrderIndex, "Order Index")
	}
	return errs
}

func (r *FooterItemRequest) apply(item *model.FooterItem) {
	item.Section = r.Section
	if r.Title != nil {
		trimmed := strings.TrimSpace(*r.Title)
		item.Title = &trimmed
	}
	if r.Content != nil {
		trimmed := strings.TrimSpace(*r.Content)
		item.Content = &trimmed
	}
	if r.URL != nil {
		trimmed := strings.TrimSpace(*r.URL)
		item.URL = &trimmed
	}
	if r.Icon != nil {
		trimmed := strings.TrimSpace(*r.Icon)
		item.Icon = &trimmed
	}
	if r.OrderIndex != nil {
		item.OrderIndex = *r.OrderIndex
	}
	if r.IsActive != nil {
		item.IsActive = *r.IsActive
	}
}

func CreateFooterItem(c echo.Context) error {
	var req FooterItemRequest
	if err := c.Bind(&req); err != nil {
		return NewAPIError(http.StatusBadRequest, "Invalid request data")
	}
	if errs := req.validate(); !errs.ok() {
		return ErrValidation(errs)
	}

	item := model.FooterItem{IsActive: true}
	req.apply(&item)

	if err := seqid.Create(database.GetDB(), &item); err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to create footer item")
	}

	return OK(c, http.StatusCreated, item, "Footer item created successfully")
}

func UpdateFooterItem(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return NewAPIError(http.StatusBadRequest, "ID is required and must be a valid ID")
	}

	var req FooterItemRequest
	if err := c.Bind(&req); err != nil {
		return NewAPIError(http.StatusBadRequest, "Invalid request data")
	}
	if errs := req.validate(); !errs.ok() {
		return ErrValidation(errs)
	}

	var item model.FooterItem
	err := database.GetDB().First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound("Footer item not found")
	}
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve footer item")
	}

	req.apply(&item)

	if err := database.GetDB().Save(&item).Error; err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to update footer item")
	}

	return OK(c, http.StatusOK, item, "Footer item updated successfully")
}

func DeleteFooterItem(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return NewAPIError(http.StatusBadRequest, "ID is required and must be a valid ID")
	}

	result := database.GetDB().Delete(&model.FooterItem{}, "id = ?", id)
	if result.Error != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to delete footer item")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound("Footer item not found")
	}

	return OK(c, http.StatusOK, nil, "Footer item deleted successfully")
}
