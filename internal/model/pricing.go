package model

// Pricing maps an internship duration in months to its price. One row per
// duration.
type Pricing struct {
	Base
	Duration int     `json:"duration" gorm:"uniqueIndex;not null"`
	Price    float64 `json:"price" gorm:"type:decimal(10,2);not null"`
	IsActive bool    `json:"isActive" gorm:"column:is_active;default:true"`
}

// IDPrefix returns the prefix used for generated ids (prc001, prc002...)
func (Pricing) IDPrefix() string { return "prc" }
