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

// ListPricings returns active pricing rows ordered by duration.
func ListPricings(c echo.Context) error {
	var pricings []model.Pricing
	err := database.GetDB().
		Where("is_active = ?", true).
		Order("duration ASC").
		Find(&pricings).Error
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve pricings")
	}
	return OK(c, http.StatusOK, pricings, "Pricings fetched successfully")
}

// ListPricingsAdmin returns every pricing row.
func ListPricingsAdmin(c echo.Context) error {
	var pricings []model.Pricing
	err := database.GetDB().
		Order("duration ASC").
		Find(&pricings).Error
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve pricings")
	}
	return OK(c, http.StatusOK, pricings, "All pricings fetched successfully")
}

// PricingRequest addresses a pricing row by duration; the row is created when
// missing and updated (and re-activated) when present.
type PricingRequest struct {
	Duration int      `json:"duration"`
	Price    *float64 `json:"price"`
}

func (r *PricingRequest) validate() fieldErrors {
	var errs fieldErrors
	if r.Duration == 0 {
		errs.add("Duration and price are required")
		return errs
	}
	checkIntRange(&errs, r.Duration, "Duration", 1, 6)
	if r.Price == nil {
		errs.add("Duration and price are required")
	} else if *r.Price < 0 {
		errs.add("Price cannot be negative")
	}
	return errs
}

func upsertPricing(tx *gorm.DB, req *PricingRequest) (*model.Pricing, error) {
	var pricing model.Pricing
	err := tx.Where("duration = ?", req.Duration).First(&pricing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		pricing = model.Pricing{
			Duration: req.Duration,
			Price:    *req.Price,
			IsActive: true,
		}
		if err := seqid.Create(tx, &pricing); err != nil {
			return nil, err
		}
		return &pricing, nil
	}
	if err != nil {
		return nil, err
	}

	pricing.Price = *req.Price
	pricing.IsActive = true
	if err := tx.Save(&pricing).Error; err != nil {
		return nil, err
	}
	return &pricing, nil
}

// UpdatePricing upserts one duration/price pair.
func UpdatePricing(c echo.Context) error {
	log := logger.FromEcho(c)

	var req PricingRequest
	if err := c.Bind(&req); err != nil {
		return NewAPIError(http.StatusBadRequest, "Invalid request data")
	}
	if errs := req.validate(); !errs.ok() {
		return ErrValidation(errs)
	}

	var pricing *model.Pricing
	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		var err error
		pricing, err = upsertPricing(tx, &req)
		return err
	})
	if err != nil {
		log.Error("Failed to update pricing", zap.Int("duration", req.Duration), zap.Error(err))
		return NewAPIError(http.StatusInternalServerError, "Failed to update pricing")
	}

	return OK(c, http.StatusOK, pricing, "Pricing updated successfully")
}

// BatchPricingRequest carries multiple duration/price pairs applied in one
// all-or-nothing transaction.
type BatchPricingRequest struct {
	Pricings []PricingRequest `json:"pricings"`
}

// UpdateMultiplePricings upserts a batch of pricing rows atomically.
func UpdateMultiplePricings(c echo.Context) error {
	log := logger.FromEcho(c)

	var req BatchPricingRequest
	if err := c.Bind(&req); err != nil {
		return NewAPIError(http.StatusBadRequest, "Invalid request data")
	}
	if req.Pricings == nil {
		return NewAPIError(http.StatusBadRequest, "Pricings must be an array")
	}

	var errs fieldErrors
	for _, item := range req.Pricings {
		if itemErrs := item.validate(); !itemErrs.ok() {
			errs = append(errs, itemErrs...)
		}
	}
	if !errs.ok() {
		return ErrValidation(errs)
	}

	updated := make([]model.Pricing, 0, len(req.Pricings))
	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		for i := range req.Pricings {
			pricing, err := upsertPricing(tx, &req.Pricings[i])
			if err != nil {
				return err
			}
			updated = append(updated, *pricing)
		}
		return nil
	})
	if err != nil {
		log.Error("Failed to update pricings", zap.Error(err))
		return NewAPIError(http.StatusInternalServerError, "Failed to update pricings")
	}

	return OK(c, http.StatusOK, updated, "Pricings updated successfully")
}

// DeletePricing removes a pricing row permanently.
func DeletePricing(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return NewAPIError(http.StatusBadRequest, "ID is required and must be a valid ID")
	}

	result := database.GetDB().Delete(&model.Pricing{}, "id = ?", id)
	if result.Error != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to delete pricing")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound("Pricing not found")
	}

	return OK(c, http.StatusOK, nil, "Pricing deleted successfully")
}
