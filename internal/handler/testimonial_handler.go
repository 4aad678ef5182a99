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

func ListTestimonials(c echo.Context) error {
	var testimonials []model.Testimonial
	err := database.GetDB().
		Where("is_active = ?", true).
		Order("order_index ASC").
		Find(&testimonials).Error
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve testimonials")
	}
	return OK(c, http.StatusOK, testimonials, "Testimonials fetched successfully")
}

func ListTestimonialsAdmin(c echo.Context) error {
	var testimonials []model.Testimonial
	err := database.GetDB().
		Order("order_index ASC, created_at DESC").
		Find(&testimonials).Error
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve testimonials")
	}
	return OK(c, http.StatusOK, testimonials, "All testimonials fetched successfully")
}

type TestimonialRequest struct {
	Quote      string `json:"quote"`
	Name       string `json:"name"`
	Title      string `json:"title"`
	Company    string `json:"company"`
	Rating     *int   `json:"rating"`
	IsActive   *bool  `json:"isActive"`
	OrderIndex *int   `json:"orderIndex"`
}

func CreateTestimonial(c echo.Context) error {
	log := logger.FromEcho(c)

	var req TestimonialRequest
	if err := c.Bind(&req); err != nil {
		return NewAPIError(http.StatusBadRequest, "Invalid request data")
	}

	var errs fieldErrors
	checkRequired(&errs, req.Quote, "Quote")
	checkRequired(&errs, req.Name, "Name")
	checkRequired(&errs, req.Title, "Title")
	checkRequired(&errs, req.Company, "Company")
	if req.Rating != nil {
		checkIntRange(&errs, *req.Rating, "Rating", 1, 5)
	}
	if req.OrderIndex != nil {
		checkNonNegative(&errs, *req.OrderIndex, "Order Index")
	}
	if !errs.ok() {
		return ErrValidation(errs)
	}

	testimonial := model.Testimonial{
		Quote:    strings.TrimSpace(req.Quote),
		Name:     strings.TrimSpace(req.Name),
		Title:    strings.TrimSpace(req.Title),
		Company:  strings.TrimSpace(req.Company),
		Rating:   5,
		IsActive: true,
	}
	if req.Rating != nil {
		testimonial.Rating = *req.Rating
	}
	if req.IsActive != nil {
		testimonial.IsActive = *req.IsActive
	}
	if req.OrderIndex != nil {
		testimonial.OrderIndex = *req.OrderIndex
	}

	if err := seqid.Create(database.GetDB(), &testimonial); err != nil {
		log.Error("Failed to create testimonial", zap.Error(err))
		return NewAPIError(http.StatusInternalServerError, "Failed to create testimonial")
	}

	return OK(c, http.StatusCreated, testimonial, "Testimonial created successfully")
}

type TestimonialPatch struct {
	Quote      *string `json:"quote"`
	Name       *string `json:"name"`
	Title      *string `json:"title"`
	Company    *string `json:"company"`
	Rating     *int    `json:"rating"`
	IsActive   *bool   `json:"isActive"`
	OrderIndex *int    `json:"orderIndex"`
}

func UpdateTestimonial(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return NewAPIError(http.StatusBadRequest, "ID is required and must be a valid ID")
	}

	var patch TestimonialPatch
	if err := c.Bind(&patch); err != nil {
		return NewAPIError(http.StatusBadRequest, "Invalid request data")
	}

	var errs fieldErrors
	if patch.Quote != nil {
		checkRequired(&errs, *patch.Quote, "Quote")
	}
	if patch.Name != nil {
		checkRequired(&errs, *patch.Name, "Name")
	}
	if patch.Rating != nil {
		checkIntRange(&errs, *patch.Rating, "Rating", 1, 5)
	}
	if patch.OrderIndex != nil {
		checkNonNegative(&errs, *patch.OrderIndex, "Order Index")
	}
	if !errs.ok() {
		return ErrValidation(errs)
	}

	var testimonial model.Testimonial
	err := database.GetDB().First(&testimonial, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound("Testimonial not found")
	}
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve testimonial")
	}

	if patch.Quote != nil {
		testimonial.Quote = strings.TrimSpace(*patch.Quote)
	}
	if patch.Name != nil {
		testimonial.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Title != nil {
		testimonial.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Company != nil {
		testimonial.Company = strings.TrimSpace(*patch.Company)
	}
	if patch.Rating != nil {
		testimonial.Rating = *patch.Rating
	}
	if patch.IsActive != nil {
		testimonial.IsActive = *patch.IsActive
	}
	if patch.OrderIndex != nil {
		testimonial.OrderIndex = *patch.OrderIndex
	}

	if err := database.GetDB().Save(&testimonial).Error; err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to update testimonial")
	}

	return OK(c, http.StatusOK, testimonial, "Testimonial updated successfully")
}

func DeleteTestimonial(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return NewAPIError(http.StatusBadRequest, "ID is required and must be a valid ID")
	}

	result := database.GetDB().Delete(&model.Testimonial{}, "id = ?", id)
	if result.Error != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to delete testimonial")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound("Testimonial not found")
	}

	return OK(c, http.StatusOK, nil, "Testimonial deleted successfully")
}
