package model

// Update is a news/announcement entry. Type is one of announcement, news,
// update, feature.
type Update struct {
	Base
	Title       string `json:"title" gorm:"type:varchar(255);not null"`
	Description string `json:"description" gorm:"type:text;not null"`
	Type        string `json:"type" gorm:"type:varchar(50);not null;default:announcement"`
	IsActive    bool   `json:"isActive" gorm:"column:is_active;default:true"`
}

// IDPrefix returns the prefix used for generated ids (upd001, upd002...)
func (Update) IDPrefix() string { return "upd" }
