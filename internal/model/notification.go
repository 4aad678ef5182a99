package model

// Notification types, matching the record the notification points at.
const (
	NotificationTypeContact    = "contact"
	NotificationTypeInternship = "internship"
)

// Notification is an admin-facing inbox entry emitted when a lead-capture
// record is created. ReferenceID is the id of the contact or internship row;
// deleting that row also removes its notification.
type Notification struct {
	Base
	Type        string `json:"type" gorm:"type:varchar(50);not null"`
	Message     string `json:"message" gorm:"type:varchar(500);not null"`
	ReferenceID string `json:"referenceId" gorm:"column:reference_id;type:varchar(32);not null"`
	IsRead      bool   `json:"isRead" gorm:"column:is_read;default:false"`
}

// IDPrefix returns the prefix used for generated ids (not001, not002...)
func (Notification) IDPrefix() string { return "not" }
