package seed

import (
	"github.com/CodeEntraHQ/codeentra-landing-page/internal/model"
	"github.com/CodeEntraHQ/codeentra-landing-page/internal/seqid"
	"gorm.io/gorm"
)

// Sample contact submissions inserted on a fresh database so the admin inbox
// is not empty on first login.
func contactSeeder() Seeder {
	defaults := []model.Contact{
		{
			Fullname: "John Doe",
			Email:    "john.doe@example.com",
			Subject:  "Website Inquiry",
			Message:  "I'm interested in learning more about your services. Please contact me at your earliest convenience.",
		},
		{
			Fullname: "Jane Smith",
			Email:    "jane.smith@example.com",
			Subject:  "Partnership Opportunity",
			Message:  "We would like to discuss a potential partnership with your company. Let's schedule a meeting.",
		},
		{
			Fullname: "Robert Johnson",
			Email:    "robert.j@example.com",
			Subject:  "Technical Support",
			Message:  "I need assistance with your platform. Can someone from your technical team reach out?",
		},
		{
			Fullname: "Emily Davis",
			Email:    "emily.davis@example.com",
			Subject:  "Product Demo Request",
			Message:  "I'd like to request a demo of your product. Please let me know your availability.",
		},
		{
			Fullname: "Michael Brown",
			Email:    "michael.brown@example.com",
			Subject:  "General Inquiry",
			Message:  "I have some questions about your pricing and features. Could you provide more information?",
		},
	}

	return Seeder{
		Name: "contacts",
		Exists: func(db *gorm.DB) (bool, error) {
			return hasAny(db, &model.Contact{})
		},
		Seed: func(tx *gorm.DB) error {
			for i := range defaults {
				if err := seqid.Create(tx, &defaults[i]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
