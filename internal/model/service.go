package model

// Service is a service offering shown on the public site.
type Service struct {
	Base
	Title           string  `json:"title" gorm:"type:varchar(255);not null"`
	Description     string  `json:"description" gorm:"type:text;not null"`
	FullDescription *string `json:"fullDescription" gorm:"column:full_description;type:text"`
	Icon            string  `json:"icon" gorm:"type:varchar(100);not null;default:code"`
	IsActive        bool    `json:"isActive" gorm:"column:is_active;default:true;index"`
	OrderIndex      int     `json:"orderIndex" gorm:"column:order_index;default:0;index"`
}

// IDPrefix returns the prefix used for generated ids (srv001, srv002...)
func (Service) IDPrefix() string { return "srv" }
