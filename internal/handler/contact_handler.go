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

// ContactRequest is the public contact form payload.
type ContactRequest struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

// SubmitContact stores a contact form submission and its admin notification
// in one transaction.
func SubmitContact(c echo.Context) error {
	log := logger.FromEcho(c)

	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return NewAPIError(http.StatusBadRequest, "Invalid request data")
	}

	var errs fieldErrors
	checkRequired(&errs, req.Fullname, "Fullname")
	checkRequired(&errs, req.Email, "Email")
	checkEmail(&errs, req.Email, "Email")
	checkRequired(&errs, req.Subject, "Subject")
	checkRequired(&errs, req.Message, "Message")
	if !errs.ok() {
		return ErrValidation(errs)
	}

	contact := model.Contact{
		Fullname: strings.TrimSpace(req.Fullname),
		Email:    strings.TrimSpace(req.Email),
		Subject:  strings.TrimSpace(req.Subject),
		Message:  strings.TrimSpace(req.Message),
	}

	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := seqid.Create(tx, &contact); err != nil {
			return err
		}
		notification := model.Notification{
			Type:        model.NotificationTypeContact,
			Message:     fmt.Sprintf("%s submitted contact form", contact.Fullname),
			ReferenceID: contact.ID,
			IsRead:      false,
		}
		return seqid.Create(tx, &notification)
	})
	if err != nil {
		log.Error("Failed to create contact", zap.Error(err))
		return NewAPIError(http.StatusInternalServerError, "Failed to submit contact form")
	}

	prometheus.LeadCounter.WithLabelValues("contact").Inc()
	log.Info("Contact form submitted", zap.String("id", contact.ID))
	return OK(c, http.StatusCreated, contact, "Contact form submitted")
}

// ListContacts returns all submissions, newest first.
func ListContacts(c echo.Context) error {
	var contacts []model.Contact
	err := database.GetDB().
		Order("created_at DESC").
		Find(&contacts).Error
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve contacts")
	}
	return OK(c, http.StatusOK, contacts, "All contacts fetched successfully")
}

// DeleteContact removes a submission and any notification that points at it.
// A missing notification is not an error.
func DeleteContact(c echo.Context) error {
	log := logger.FromEcho(c)
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return NewAPIError(http.StatusBadRequest, "ID is required and must be a valid ID")
	}

	var contact model.Contact
	err := database.GetDB().First(&contact, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound("Contact not found")
	}
	if err != nil {
		return NewAPIError(http.StatusInternalServerError, "Failed to retrieve contact")
	}

	err = database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("type = ? AND reference_id = ?", model.NotificationTypeContact, id).
			Delete(&model.Notification{}).Error; err != nil {
			return err
		}
		return tx.Delete(&contact).Error
	})
	if err != nil {
		log.Error("Failed to delete contact", zap.String("id", id), zap.Error(err))
		return NewAPIError(http.StatusInternalServerError, "Failed to delete contact")
	}

	return OK(c, http.StatusOK, nil, "Contact deleted successfully")
}
