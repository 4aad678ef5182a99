package model

// Admin is the single administrator credential record. The system supports
// exactly one row; the seeder creates it with the fixed id admin001 and
// handlers reject creating a second one.
type Admin struct {
	Base
	Email        string  `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Password     string  `json:"-" gorm:"type:varchar(255);not null"`
	ProfilePhoto *string `json:"profilePhoto" gorm:"type:varchar(500)"`
}

// IDPrefix returns the prefix used for generated ids (admin001, admin002...)
func (Admin) IDPrefix() string { return "admin" }
