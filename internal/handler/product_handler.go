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

// ListProducts returns active products for the public site.
func ListProducts(c echo.Context) error {
	var products []model.Product
	err := database.GetDB().
		Where("is_active = ?", true).
		Order("order_index ASC").
		Find(&products).Error
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve products")
	}
	return OK(c, http.StatusOK, products, "Products fetched successfully")
}

// ListProductsAdmin returns every product including inactive ones.
func ListProductsAdmin(c echo.Context) error {
	var products []model.Product
	err := database.GetDB().
		Order("order_index ASC, created_at DESC").
		Find(&products).Error
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve products")
	}
	return OK(c, http.StatusOK, products, "All products fetched successfully")
}

// ProductRequest is the create payload for a product.
type ProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Icon        *string  `json:"icon"`
	Features    []string `json:"features"`
	IsActive    *bool    `json:"isActive"`
	OrderIndex  *int     `json:"orderIndex"`
}

// CreateProduct creates a product with a generated id and isActive default
// true.
func CreateProduct(c echo.Context) error {
	log := logger.FromEcho(c)

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return NewAPIError(http.StatusBadRequest, "Invalid request data")
	}

	var errs fieldErrors
	checkRequired(&errs, req.Name, "Name")
	checkMaxLen(&errs, req.Name, "Name", 255)
	checkRequired(&errs, req.Description, "Description")
	checkMaxLen(&errs, req.Description, "Description", 2000)
	checkRequired(&errs, req.URL, "URL")
	checkURL(&errs, req.URL, "URL")
	if req.Icon != nil {
		checkMaxLen(&errs, *req.Icon, "Icon", 100)
	}
	if req.OrderIndex != nil {
		checkNonNegative(&errs, *req.OrderIndex, "Order Index")
	}
	if !errs.ok() {
		return ErrValidation(errs)
	}

	features := make(model.StringList, 0, len(req.Features))
	for _, f := range req.Features {
		if trimmed := strings.TrimSpace(f); trimmed != "" {
			features = append(features, trimmed)
		}
	}

	product := model.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		URL:         strings.TrimSpace(req.URL),
		Icon:        "Sparkles",
		Features:    features,
		IsActive:    true,
	}
	if req.Icon != nil && strings.TrimSpace(*req.Icon) != "" {
		product.Icon = strings.TrimSpace(*req.Icon)
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.OrderIndex != nil {
		product.OrderIndex = *req.OrderIndex
	}

	if err := seqid.Create(database.GetDB(), &product); err != nil {
		log.Error("Failed to create product", zap.String("name", req.Name), zap.Error(err))
		return NewAPIError(http.StatusInternalServerError, "Failed to create product")
	}

	log.Info("Product created", zap.String("id", product.ID), zap.String("name", product.Name))
	return OK(c, http.StatusCreated, product, "Product created successfully")
}

// ProductPatch is the partial-update payload; nil fields are left unchanged.
type ProductPatch struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	URL         *string   `json:"url"`
	Icon        *string   `json:"icon"`
	Features    *[]string `json:"features"`
	IsActive    *bool     `json:"isActive"`
	OrderIndex  *int      `json:"orderIndex"`
}

func (p *ProductPatch) validate() fieldErrors {
	var errs fieldErrors
	if p.Name != nil {
		checkRequired(&errs, *p.Name, "Name")
		checkMaxLen(&errs, *p.Name, "Name", 255)
	}
	if p.Description != nil {
		checkRequired(&errs, *p.Description, "Description")
		checkMaxLen(&errs, *p.Description, "Description", 2000)
	}
	if p.URL != nil {
		checkURL(&errs, *p.URL, "URL")
	}
	if p.Icon != nil {
		checkMaxLen(&errs, *p.Icon, "Icon", 100)
	}
	if p.OrderIndex != nil {
		checkNonNegative(&errs, *p.OrderIndex, "Order Index")
	}
	return errs
}

// UpdateProduct applies a validated patch. The whole patch is validated
// before any field is touched.
func UpdateProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return NewAPIError(http.StatusBadRequest, "ID is required and must be a valid ID")
	}

	var patch ProductPatch
	if err := c.Bind(&patch); err != nil {
		return NewAPIError(http.StatusBadRequest, "Invalid request data")
	}
	if errs := patch.validate(); !errs.ok() {
		return ErrValidation(errs)
	}

	var product model.Product
	err := database.GetDB().First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound("Product not found")
	}
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve product")
	}

	if patch.Name != nil {
		product.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		product.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.URL != nil {
		product.URL = strings.TrimSpace(*patch.URL)
	}
	if patch.Icon != nil {
		product.Icon = strings.TrimSpace(*patch.Icon)
	}
	if patch.Features != nil {
		features := make(model.StringList, 0, len(*patch.Features))
		for _, f := range *patch.Features {
			if trimmed := strings.TrimSpace(f); trimmed != "" {
				features = append(features, trimmed)
			}
		}
		product.Features = features
	}
	if patch.IsActive != nil {
		product.IsActive = *patch.IsActive
	}
	if patch.OrderIndex != nil {
		product.OrderIndex = *patch.OrderIndex
	}

	if err := database.GetDB().Save(&product).Error; err != nil {
		log.Error("Failed to update product", zap.String("id", id), zap.Error(err))
		return NewAPIError(http.StatusInternalServerError, "Failed to update product")
	}

	log.Info("Product updated", zap.String("id", product.ID))
	return OK(c, http.StatusOK, product, "Product updated successfully")
}

// DeleteProduct removes a product permanently.
func DeleteProduct(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return NewAPIError(http.StatusBadRequest, "ID is required and must be a valid ID")
	}

	result := database.GetDB().Delete(&model.Product{}, "id = ?", id)
	if result.Error != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to delete product")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound("Product not found")
	}

	return OK(c, http.StatusOK, nil, "Product deleted successfully")
}
