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

func ListFAQs(c echo.Context) error {
	var faqs []model.FAQ
	err := database.GetDB().
		Where("is_active = ?", true).
		Order("category ASC, created_at DESC").
		Find(&faqs).Error
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve FAQs")
	}
	return OK(c, http.StatusOK, faqs, "FAQs fetched successfully")
}

func ListFAQsAdmin(c echo.Context) error {
	var faqs []model.FAQ
	err := database.GetDB().
		Order("category ASC, created_at DESC").
		Find(&faqs).Error
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve FAQs")
	}
	return OK(c, http.StatusOK, faqs, "All FAQs fetched successfully for admin")
}

func GetFAQByID(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return NewAPIError(http.StatusBadRequest, "ID is required and must be a valid ID")
	}

	var faq model.FAQ
	err := database.GetDB().First(&faq, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound("FAQ not found")
	}
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve FAQ")
	}

	return OK(c, http.StatusOK, faq, "FAQ fetched successfully")
}

type FAQRequest struct {
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Category *string `json:"category"`
	IsActive *bool   `json:"isActive"`
}

func CreateFAQ(c echo.Context) error {
	var req FAQRequest
	if err := c.Bind(&req); err != nil {
		return NewAPIError(http.StatusBadRequest, "Invalid request data")
	}

	var errs fieldErrors
	checkRequired(&errs, req.Question, "Question")
	checkRequired(&errs, req.Answer, "Answer")
	if !errs.ok() {
		return ErrValidation(errs)
	}

	faq := model.FAQ{
		Question: strings.TrimSpace(req.Question),
		Answer:   strings.TrimSpace(req.Answer),
		Category: "general",
		IsActive: true,
	}
	if req.Category != nil && strings.TrimSpace(*req.Category) != "" {
		faq.Category = strings.TrimSpace(*req.Category)
	}
	if req.IsActive != nil {
		faq.IsActive = *req.IsActive
	}

	if err := seqid.Create(database.GetDB(), &faq); err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to create FAQ")
	}

	return OK(c, http.StatusCreated, faq, "FAQ created successfully")
}

func UpdateFAQ(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return NewAPIError(http.StatusBadRequest, "ID is required and must be a valid ID")
	}

	var req FAQRequest
	if err := c.Bind(&req); err != nil {
		return NewAPIError(http.StatusBadRequest, "Invalid request data")
	}

	var errs fieldErrors
	checkRequired(&errs, req.Question, "Question")
	checkRequired(&errs, req.Answer, "Answer")
	if !errs.ok() {
		return ErrValidation(errs)
	}

	var faq model.FAQ
	err := database.GetDB().First(&faq, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound("FAQ not found")
	}
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve FAQ")
	}

	faq.Question = strings.TrimSpace(req.Question)
	faq.Answer = strings.TrimSpace(req.Answer)
	if req.Category != nil && strings.TrimSpace(*req.Category) != "" {
		faq.Category = strings.TrimSpace(*req.Category)
	}
	if req.IsActive != nil {
		faq.IsActive = *req.IsActive
	}

	if err := database.GetDB().Save(&faq).Error; err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to update FAQ")
	}

	return OK(c, http.StatusOK, faq, "FAQ updated successfully")
}

func DeleteFAQ(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return NewAPIError(http.StatusBadRequest, "ID is required and must be a valid ID")
	}

	result := database.GetDB().Delete(&model.FAQ{}, "id = ?", id)
	if result.Error != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to delete FAQ")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound("FAQ not found")
	}

	return OK(c, http.StatusOK, nil, "FAQ deleted successfully")
}
