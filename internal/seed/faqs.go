package seed

import (
	"github.com/CodeEntraHQ/codeentra-landing-page/internal/model"
	"github.com/CodeEntraHQ/codeentra-landing-page/internal/seqid"
	"gorm.io/gorm"
)

func faqSeeder() Seeder {
	defaults := []model.FAQ{
		{
			Question: "How do I apply for an internship?",
			Answer:   "Visit the Career section on the website and fill out the internship application form with your details, skills, and preferences.",
			Category: "internship",
			IsActive: true,
		},
		{
			Question: "How long do internship programs run?",
			Answer:   "Internship programs are available in durations of 1 to 6 months depending on the program.",
			Category: "internship",
			IsActive: true,
		},
		{
			Question: "What services does codeEntra offer?",
			Answer:   "We offer web development, DevOps solutions, cloud services, UX/UI design, IT consulting, and cybersecurity.",
			Category: "services",
			IsActive: true,
		},
		{
			Question: "What is codeEntra?",
			Answer:   "codeEntra is a technology solutions provider founded in 2025, specializing in empowering businesses with innovative technology solutions.",
			Category: "company",
			IsActive: true,
		},
		{
			Question: "How can I get in touch?",
			Answer:   "Use the contact form on this page or email us directly. We would love to hear from you!",
			Category: "general",
			IsActive: true,
		},
	}

	return Seeder{
		Name: "faqs",
		Exists: func(db *gorm.DB) (bool, error) {
			return hasAny(db, &model.FAQ{})
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
