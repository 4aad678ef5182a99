package model

// FAQ is a frequently-asked-question entry grouped by category (general,
// services, internship, company).
type FAQ struct {
	Base
	Question string `json:"question" gorm:"type:text;not null"`
	Answer   string `json:"answer" gorm:"type:text;not null"`
	Category string `json:"category" gorm:"type:varchar(100);not null;default:general;index"`
	IsActive bool   `json:"isActive" gorm:"column:is_active;default:true;index"`
}

// IDPrefix returns the prefix used for generated ids (faq001, faq002...)
func (FAQ) IDPrefix() string { return "faq" }
