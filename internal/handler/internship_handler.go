package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/CodeEntraHQ/codeentra-landing-page/internal/model"
	"github.com/CodeEntraHQ/codeentra-landing-page/internal/seqid"
	"github.com/CodeEntraHQ/codeentra-landing-page/pkg/database"
	"github.com/CodeEntraHQ/codeentra-landing-page/pkg/logger"
	"github.com/CodeEntraHQ/codeentra-landing-page/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// InternshipRequest is the careers form payload. Duration is in months.
type InternshipRequest struct {
	FullName    string  `json:"fullName"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	College     string  `json:"college"`
	Course      string  `json:"course"`
	Year        string  `json:"year"`
	Duration    int     `json:"duration"`
	Skills      string  `json:"skills"`
	Resume      string  `json:"resume"`
	CoverLetter *string `json:"coverLetter"`
}

// SubmitInternship validates an application, resolves the price from the
// active pricing row for the requested duration, and stores application plus
// notification in one transaction.
func SubmitInternship(c echo.Context) error {
	log := logger.FromEcho(c)

	var req InternshipRequest
	if err := c.Bind(&req); err != nil {
		return NewAPIError(http.StatusBadRequest, "Invalid request data")
	}

	var errs fieldErrors
	checkRequired(&errs, req.FullName, "Full name")
	checkRequired(&errs, req.Email, "Email")
	checkEmail(&errs, req.Email, "Email")
	checkRequired(&errs, req.Phone, "Phone")
	checkRequired(&errs, req.College, "College")
	checkRequired(&errs, req.Course, "Course")
	checkRequired(&errs, req.Year, "Year")
	checkRequired(&errs, req.Skills, "Skills")
	checkRequired(&errs, req.Resume, "Resume")
	checkURL(&errs, req.Resume, "Resume")
	checkIntRange(&errs, req.Duration, "Duration", 1, 6)
	if !errs.ok() {
		return ErrValidation(errs)
	}

	internship := model.Internship{
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.TrimSpace(req.Email),
		Phone:    strings.TrimSpace(req.Phone),
		College:  strings.TrimSpace(req.College),
		Course:   strings.TrimSpace(req.Course),
		Year:     strings.TrimSpace(req.Year),
		Duration: req.Duration,
		Skills:   strings.TrimSpace(req.Skills),
		Resume:   strings.TrimSpace(req.Resume),
	}
	if req.CoverLetter != nil && strings.TrimSpace(*req.CoverLetter) != "" {
		trimmed := strings.TrimSpace(*req.CoverLetter)
		internship.CoverLetter = &trimmed
	}

	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		// Price comes from the pricing table, never from the client.
		var pricing model.Pricing
		err := tx.Where("duration = ? AND is_active = ?", req.Duration, true).First(&pricing).Error
		if err == nil {
			internship.Price = &pricing.Price
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := seqid.Create(tx, &internship); err != nil {
			return err
		}
		notification := model.Notification{
			Type:        model.NotificationTypeInternship,
			Message:     fmt.Sprintf("%s applied for internship", internship.FullName),
			ReferenceID: internship.ID,
			IsRead:      false,
		}
		return seqid.Create(tx, &notification)
	})
	if err != nil {
		log.Error("Failed to create internship application", zap.Error(err))
		return NewAPIError(http.StatusInternalServerError, "Failed to submit internship application")
	}

	prometheus.LeadCounter.WithLabelValues("internship").Inc()
	log.Info("Internship application submitted",
		zap.String("id", internship.ID),
		zap.Int("duration", internship.Duration))
	return OK(c, http.StatusCreated, internship, "Internship application submitted successfully")
}

// ListInternships returns all applications, newest first.
func ListInternships(c echo.Context) error {
	var internships []model.Internship
	err := database.GetDB().
		Order("created_at DESC").
		Find(&internships).Error
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve internships")
	}
	return OK(c, http.StatusOK, internships, "All internships fetched successfully")
}

// DeleteInternship removes an application and any notification pointing at
// it.
func DeleteInternship(c echo.Context) error {
	log := logger.FromEcho(c)
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return NewAPIError(http.StatusBadRequest, "ID is required and must be a valid ID")
	}

	var internship model.Internship
	err := database.GetDB().First(&internship, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound("Internship not found")
	}
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve internship")
	}

	err = database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("type = ? AND reference_id = ?", model.NotificationTypeInternship, id).
			Delete(&model.Notification{}).Error; err != nil {
			return err
		}
		return tx.Delete(&internship).Error
	})
	if err != nil {
		log.Error("Failed to delete internship", zap.String("id", id), zap.Error(err))
		return NewAPIError(http.StatusInternalServerError, "Failed to delete internship")
	}

	return OK(c, http.StatusOK, nil, "Internship deleted successfully")
}
