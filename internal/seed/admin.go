package seed

import (
	"github.com/CodeEntraHQ/codeentra-landing-page/internal/model"
	"github.com/CodeEntraHQ/codeentra-landing-page/pkg/config"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminID is the fixed id of the single administrator row.
const AdminID = "admin001"

func adminSeeder(cfg *config.Config) Seeder {
	return Seeder{
		Name: "admin",
		Exists: func(db *gorm.DB) (bool, error) {
			return hasAny(db, &model.Admin{})
		},
		Seed: func(tx *gorm.DB) error {
			hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			admin := model.Admin{
				Email:    cfg.Admin.Email,
				Password: string(hashed),
			}
			admin.ID = AdminID
			return tx.Create(&admin).Error
		},
	}
}
