package model

// Contact is a submission from the public contact form.
type Contact struct {
	Base
	Fullname string `json:"fullname" gorm:"type:varchar(255);not null"`
	Email    string `json:"email" gorm:"type:varchar(255);not null"`
	Subject  string `json:"subject" gorm:"type:varchar(255);not null"`
	Message  string `json:"message" gorm:"type:text;not null"`
}

// IDPrefix returns the prefix used for generated ids (usr001, usr002...)
func (Contact) IDPrefix() string { return "usr" }
