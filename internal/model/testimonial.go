package model

// Testimonial is a customer quote shown on the public site. Rating is 1-5.
type Testimonial struct {
	Base
	Quote      string `json:"quote" gorm:"type:text;not null"`
	Name       string `json:"name" gorm:"type:varchar(255);not null"`
	Title      string `json:"title" gorm:"type:varchar(255);not null"`
	Company    string `json:"company" gorm:"type:varchar(255);not null"`
	Rating     int    `json:"rating" gorm:"not null;default:5"`
	IsActive   bool   `json:"isActive" gorm:"column:is_active;default:true;index"`
	OrderIndex int    `json:"orderIndex" gorm:"column:order_index;default:0;index"`
}

// IDPrefix returns the prefix used for generated ids (tst001, tst002...)
func (Testimonial) IDPrefix() string { return "tst" }
