// Package seed inserts default content on first boot and patches known rows
// whose shape is stale. Seeders run in a fixed order after migration and
// before the server accepts traffic; each one is independent and a failure
// never stops the rest of the sequence.
package seed

import (
	"github.com/CodeEntraHQ/codeentra-landing-page/pkg/config"
	"github.com/CodeEntraHQ/codeentra-landing-page/pkg/logger"
	"github.com/CodeEntraHQ/codeentra-landing-page/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seeder seeds one entity type. Exists is the idempotence guard: when it
// reports true the batch is skipped. Seed inserts the full default batch and
// runs inside a single transaction.
type Seeder struct {
	Name   string
	Exists func(db *gorm.DB) (bool, error)
	Seed   func(tx *gorm.DB) error
}

// PatchRule reconciles rows that exist but predate a schema/content change.
// Rules run on every boot, after the seeders.
type PatchRule struct {
	Name  string
	Apply func(db *gorm.DB) error
}

// All returns the seeder sequence in execution order.
func All(cfg *config.Config) []Seeder {
	return []Seeder{
		adminSeeder(cfg),
		contactSeeder(),
		pricingSeeder(),
		serviceSeeder(),
		faqSeeder(),
		conversationSeeder(),
	}
}

// Patches returns the reconciliation rules in execution order.
func Patches() []PatchRule {
	return []PatchRule{
		conversationProductsOptionPatch(),
	}
}

// Run executes the full seeder sequence and patch rules, continue-on-error.
func Run(db *gorm.DB, cfg *config.Config) {
	log := logger.GetLogger()

	for _, s := range All(cfg) {
		exists, err := s.Exists(db)
		if err != nil {
			log.Error("Seeder existence check failed", zap.String("seeder", s.Name), zap.Error(err))
			prometheus.RecordSeederRun(s.Name, "failed")
			continue
		}
		if exists {
			log.Info("Seed data already present, skipping", zap.String("seeder", s.Name))
			prometheus.RecordSeederRun(s.Name, "skipped")
			continue
		}

		if err := db.Transaction(s.Seed); err != nil {
			log.Error("Seeder failed, batch rolled back", zap.String("seeder", s.Name), zap.Error(err))
			prometheus.RecordSeederRun(s.Name, "failed")
			continue
		}
		log.Info("Seed data inserted", zap.String("seeder", s.Name))
		prometheus.RecordSeederRun(s.Name, "seeded")
	}

	for _, p := range Patches() {
		if err := p.Apply(db); err != nil {
			log.Error("Patch rule failed", zap.String("patch", p.Name), zap.Error(err))
			continue
		}
	}
}

// hasAny reports whether any row of the given model exists. This is the one
// idempotence predicate used by every seeder.
func hasAny(db *gorm.DB, m interface{}) (bool, error) {
	var count int64
	if err := db.Model(m).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
