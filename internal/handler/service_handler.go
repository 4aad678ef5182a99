package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/CodeEntraHQ/codeentra-landing-page/internal/model"
	"github.com/CodeEntraHQ/codeentra-landing-page/internal/seqid"
	"github.com/CodeEntraHQ/codeentra-landing-page/pkg/database"
	"github.com/CodeEntraHQ/codeentra-landing-page/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func ListServices(c echo.Context) error {
	var services []model.Service
	err := database.GetDB().
		Where("is_active = ?", true).
		Order("order_index ASC").
		Find(&services).Error
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve services")
	}
	return OK(c, http.StatusOK, services, "Services fetched successfully")
}

func ListServicesAdmin(c echo.Context) error {
	var services []model.Service
	err := database.GetDB().
		Order("order_index ASC, created_at DESC").
		Find(&services).Error
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve services")
	}
	return OK(c, http.StatusOK, services, "All services fetched successfully")
}

type ServiceRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	FullDescription *string `json:"fullDescription"`
	Icon            *string `json:"icon"`
	IsActive        *bool   `json:"isActive"`
	OrderIndex      *int    `json:"orderIndex"`
}

func CreateService(c echo.Context) error {
	log := logger.FromEcho(c)

	var req ServiceRequest
	if err := c.Bind(&req); err != nil {
		return NewAPIError(http.StatusBadRequest, "Invalid request data")
	}

	var errs fieldErrors
	checkRequired(&errs, req.Title, "Title")
	checkMaxLen(&errs, req.Title, "Title", 255)
	checkRequired(&errs, req.Description, "Description")
	checkMaxLen(&errs, req.Description, "Description", 2000)
	if req.Icon != nil {
		checkMaxLen(&errs, *req.Icon, "Icon", 100)
	}
	if req.OrderIndex != nil {
		checkNonNegative(&errs, *req.OrderIndex, "Order Index")
	}
	if !errs.ok() {
		return ErrValidation(errs)
	}

	service := model.Service{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Icon:        "code",
		IsActive:    true,
	}
	if req.FullDescription != nil {
		trimmed := strings.TrimSpace(*req.FullDescription)
		service.FullDescription = &trimmed
	}
	if req.Icon != nil && strings.TrimSpace(*req.Icon) != "" {
		service.Icon = strings.TrimSpace(*req.Icon)
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}
	if req.OrderIndex != nil {
		service.OrderIndex = *req.OrderIndex
	}

	if err := seqid.Create(database.GetDB(), &service); err != nil {
		log.Error("Failed to create service", zap.String("title", req.Title), zap.Error(err))
		return NewAPIError(http.StatusInternalServerError, "Failed to create service")
	}

	log.Info("Service created", zap.String("id", service.ID))
	return OK(c, http.StatusCreated, service, "Service created successfully")
}

type ServicePatch struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	FullDescription *string `json:"fullDescription"`
	Icon            *string `json:"icon"`
	IsActive        *bool   `json:"isActive"`
	OrderIndex      *int    `json:"orderIndex"`
}

func UpdateService(c echo.Context) error {
	log := logger.FromEcho(c)
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return NewAPIError(http.StatusBadRequest, "ID is required and must be a valid ID")
	}

	var patch ServicePatch
	if err := c.Bind(&patch); err != nil {
		return NewAPIError(http.StatusBadRequest, "Invalid request data")
	}

	var errs fieldErrors
	if patch.Title != nil {
		checkRequired(&errs, *patch.Title, "Title")
		checkMaxLen(&errs, *patch.Title, "Title", 255)
	}
	if patch.Description != nil {
		checkRequired(&errs, *patch.Description, "Description")
		checkMaxLen(&errs, *patch.Description, "Description", 2000)
	}
	if patch.Icon != nil {
		checkMaxLen(&errs, *patch.Icon, "Icon", 100)
	}
	if patch.OrderIndex != nil {
		checkNonNegative(&errs, *patch.OrderIndex, "Order Index")
	}
	if !errs.ok() {
		return ErrValidation(errs)
	}

	var service model.Service
	err := database.GetDB().First(&service, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound("Service not found")
	}
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve service")
	}

	if patch.Title != nil {
		service.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		service.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.FullDescription != nil {
		trimmed := strings.TrimSpace(*patch.FullDescription)
		service.FullDescription = &trimmed
	}
	if patch.Icon != nil {
		service.Icon = strings.TrimSpace(*patch.Icon)
	}
	if patch.IsActive != nil {
		service.IsActive = *patch.IsActive
	}
	if patch.OrderIndex != nil {
		service.OrderIndex = *patch.OrderIndex
	}

	if err := database.GetDB().Save(&service).Error; err != nil {
		log.Error("Failed to update service", zap.String("id", id), zap.Error(err))
		return NewAPIError(http.StatusInternalServerError, "Failed to update service")
	}

	return OK(c, http.StatusOK, service, "Service updated successfully")
}

func DeleteService(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return NewAPIError(http.StatusBadRequest, "ID is required and must be a valid ID")
	}

	result := database.GetDB().Delete(&model.Service{}, "id = ?", id)
	if result.Error != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to delete service")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound("Service not found")
	}

	return OK(c, http.StatusOK, nil, "Service deleted successfully")
}
