package model

// Product is a catalog entry shown on the public site and surfaced by the
// chatbot's dynamic products node.
type Product struct {
	Base
	Name        string     `json:"name" gorm:"type:varchar(255);not null"`
	Description string     `json:"description" gorm:"type:text;not null"`
	URL         string     `json:"url" gorm:"type:varchar(500);not null"`
	Icon        string     `json:"icon" gorm:"type:varchar(100);not null;default:Sparkles"`
	Features    StringList `json:"features" gorm:"not null"`
	IsActive    bool       `json:"isActive" gorm:"column:is_active;default:true;index"`
	OrderIndex  int        `json:"orderIndex" gorm:"column:order_index;default:0;index"`
}

// IDPrefix returns the prefix used for generated ids (prod001, prod002...)
func (Product) IDPrefix() string { return "prod" }
