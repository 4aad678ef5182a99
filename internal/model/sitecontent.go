package model

// ContactInfo types
const (
	ContactInfoTypeOffice = "office"
	ContactInfoTypeEmail  = "email"
	ContactInfoTypePhone  = "phone"
)

// ContactInfo is one entry of the site's contact block (an office address,
// an email address or a phone number).
type ContactInfo struct {
	Base
	Type       string `json:"type" gorm:"type:varchar(50);not null"`
	Label      string `json:"label" gorm:"type:varchar(255);not null"`
	Value      string `json:"value" gorm:"type:text;not null"`
	OrderIndex int    `json:"orderIndex" gorm:"column:order_index;default:0"`
	IsActive   bool   `json:"isActive" gorm:"column:is_active;default:true"`
}

// IDPrefix returns the prefix used for generated ids (cont001, cont002...)
func (ContactInfo) IDPrefix() string { return "cont" }

// Footer sections
const (
	FooterSectionCompany      = "company"
	FooterSectionServices     = "services"
	FooterSectionCompanyLinks = "companyLinks"
	FooterSectionSocial       = "social"
	FooterSectionCopyright    = "copyright"
)

// FooterItem is one entry of the site footer, grouped into sections.
type FooterItem struct {
	Base
	Section    string  `json:"section" gorm:"type:varchar(50);not null"`
	Title      *string `json:"title" gorm:"type:varchar(255)"`
	Content    *string `json:"content" gorm:"type:text"`
	URL        *string `json:"url" gorm:"type:varchar(500)"`
	Icon       *string `json:"icon" gorm:"type:varchar(50)"`
	OrderIndex int     `json:"orderIndex" gorm:"column:order_index;default:0"`
	IsActive   bool    `json:"isActive" gorm:"column:is_active;default:true"`
}

// IDPrefix returns the prefix used for generated ids (foot001, foot002...)
func (FooterItem) IDPrefix() string { return "foot" }

// NavbarItem is one entry of the site navigation bar.
type NavbarItem struct {
	Base
	Label      string `json:"label" gorm:"type:varchar(255);not null"`
	URL        string `json:"url" gorm:"type:varchar(500);not null"`
	OrderIndex int    `json:"orderIndex" gorm:"column:order_index;default:0"`
	IsActive   bool   `json:"isActive" gorm:"column:is_active;default:true"`
}

// IDPrefix returns the prefix used for generated ids (nav001, nav002...)
func (NavbarItem) IDPrefix() string { return "nav" }
