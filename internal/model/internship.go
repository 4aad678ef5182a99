package model

// Internship is an application submitted through the careers form. Duration
// is in months (1-6); Price is resolved from the active pricing row for that
// duration at submission time.
type Internship struct {
	Base
	FullName    string   `json:"fullName" gorm:"column:full_name;type:varchar(255);not null"`
	Email       string   `json:"email" gorm:"type:varchar(255);not null"`
	Phone       string   `json:"phone" gorm:"type:varchar(50);not null"`
	College     string   `json:"college" gorm:"type:varchar(255);not null"`
	Course      string   `json:"course" gorm:"type:varchar(255);not null"`
	Year        string   `json:"year" gorm:"type:varchar(50);not null"`
	Duration    int      `json:"duration" gorm:"not null"`
	Skills      string   `json:"skills" gorm:"type:varchar(500);not null"`
	Resume      string   `json:"resume" gorm:"type:varchar(500);not null"`
	CoverLetter *string  `json:"coverLetter" gorm:"column:cover_letter;type:text"`
	Price       *float64 `json:"price" gorm:"type:decimal(10,2)"`
}

// IDPrefix returns the prefix used for generated ids (int001, int002...)
func (Internship) IDPrefix() string { return "int" }
