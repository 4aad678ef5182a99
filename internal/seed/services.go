package seed

import (
	"github.com/CodeEntraHQ/codeentra-landing-page/internal/model"
	"github.com/CodeEntraHQ/codeentra-landing-page/internal/seqid"
	"gorm.io/gorm"
)

func serviceSeeder() Seeder {
	defaults := []model.Service{
		{
			Title:       "Web Development",
			Description: "Custom websites and web applications built with the latest technologies to create powerful digital experiences tailored to your business needs.",
			Icon:        "code",
			IsActive:    true,
			OrderIndex:  1,
		},
		{
			Title:       "DevOps Solutions",
			Description: "Streamlined development workflows, CI/CD pipelines, and infrastructure automation to improve your delivery process and operational efficiency.",
			Icon:        "settings",
			IsActive:    true,
			OrderIndex:  2,
		},
		{
			Title:       "Cloud Services",
			Description: "Expert cloud solutions for AWS, Azure, and GCP to help you scale your infrastructure efficiently and securely.",
			Icon:        "cloud",
			IsActive:    true,
			OrderIndex:  3,
		},
		{
			Title:       "UX/UI Design",
			Description: "User-centered design that creates intuitive, engaging, and accessible digital experiences that convert visitors to customers.",
			Icon:        "palette",
			IsActive:    true,
			OrderIndex:  4,
		},
		{
			Title:       "IT Consulting",
			Description: "Strategic technology consulting to help your business make the right decisions for sustainable growth and innovation.",
			Icon:        "lightbulb",
			IsActive:    true,
			OrderIndex:  5,
		},
		{
			Title:       "Cybersecurity",
			Description: "Comprehensive security solutions to protect your business from threats and ensure compliance with regulations.",
			Icon:        "shield",
			IsActive:    true,
			OrderIndex:  6,
		},
	}

	return Seeder{
		Name: "services",
		Exists: func(db *gorm.DB) (bool, error) {
			return hasAny(db, &model.Service{})
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
