package seed

import (
	"github.com/CodeEntraHQ/codeentra-landing-page/internal/model"
	"github.com/CodeEntraHQ/codeentra-landing-page/internal/seqid"
	"gorm.io/gorm"
)

// Default internship pricing, one row per supported duration in months.
// Prices are in INR and editable from the admin panel.
func pricingSeeder() Seeder {
	defaults := []model.Pricing{
		{Duration: 1, Price: 1999, IsActive: true},
		{Duration: 2, Price: 3499, IsActive: true},
		{Duration: 3, Price: 4999, IsActive: true},
		{Duration: 4, Price: 6499, IsActive: true},
		{Duration: 5, Price: 7999, IsActive: true},
		{Duration: 6, Price: 9499, IsActive: true},
	}

	return Seeder{
		Name: "pricing",
		Exists: func(db *gorm.DB) (bool, error) {
			return hasAny(db, &model.Pricing{})
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
