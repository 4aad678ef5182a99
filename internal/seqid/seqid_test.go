package seqid_test

import (
	"fmt"
	"testing"

	"github.com/CodeEntraHQ/codeentra-landing-page/internal/model"
	"github.com/CodeEntraHQ/codeentra-landing-page/internal/seqid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		existing []string
		want     string
	}{
		{"empty set starts at one", "prod", nil, "prod001"},
		{"sequential", "prod", []string{"prod001", "prod002"}, "prod003"},
		{"gaps are not refilled", "usr", []string{"usr001", "usr005"}, "usr006"},
		{"non-numeric suffixes are ignored", "srv", []string{"srv001", "srvlegacy", "srv003"}, "srv004"},
		{"foreign ids are ignored", "conv", []string{"conv002", "notanid"}, "conv003"},
		{"suffix grows past the pad width", "tst", []string{"tst999"}, "tst1000"},
		{"wide suffix keeps counting", "tst", []string{"tst1000"}, "tst1001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, seqid.Next(tt.prefix, tt.existing))
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "prod001", seqid.Format("prod", 1))
	assert.Equal(t, "prod042", seqid.Format("prod", 42))
	assert.Equal(t, "prod999", seqid.Format("prod", 999))
	assert.Equal(t, "prod1000", seqid.Format("prod", 1000))
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Service{}))
	return db
}

func TestCreateAllocatesSequentialIDs(t *testing.T) {
	db := openTestDB(t)

	for i := 1; i <= 3; i++ {
		svc := model.Service{Title: fmt.Sprintf("Service %d", i), Description: "d"}
		require.NoError(t, seqid.Create(db, &svc))
		assert.Equal(t, seqid.Format("srv", i), svc.ID)
	}
}

func TestCreateContinuesFromMax(t *testing.T) {
	db := openTestDB(t)

	seeded := model.Service{Base: model.Base{ID: "srv041"}, Title: "Existing", Description: "d"}
	require.NoError(t, db.Create(&seeded).Error)

	svc := model.Service{Title: "New", Description: "d"}
	require.NoError(t, seqid.Create(db, &svc))
	assert.Equal(t, "srv042", svc.ID)
}

func TestCreateIgnoresNonNumericIDs(t *testing.T) {
	db := openTestDB(t)

	legacy := model.Service{Base: model.Base{ID: "srvlegacy"}, Title: "Legacy", Description: "d"}
	require.NoError(t, db.Create(&legacy).Error)

	svc := model.Service{Title: "New", Description: "d"}
	require.NoError(t, seqid.Create(db, &svc))
	assert.Equal(t, "srv001", svc.ID)
}

func TestCreateKeepsExplicitID(t *testing.T) {
	db := openTestDB(t)

	svc := model.Service{Base: model.Base{ID: "srv777"}, Title: "Pinned", Description: "d"}
	require.NoError(t, seqid.Create(db, &svc))
	assert.Equal(t, "srv777", svc.ID)

	var count int64
	require.NoError(t, db.Model(&model.Service{}).Where("id = ?", "srv777").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateExplicitDuplicateFails(t *testing.T) {
	db := openTestDB(t)

	first := model.Service{Base: model.Base{ID: "srv001"}, Title: "First", Description: "d"}
	require.NoError(t, seqid.Create(db, &first))

	dup := model.Service{Base: model.Base{ID: "srv001"}, Title: "Dup", Description: "d"}
	assert.Error(t, seqid.Create(db, &dup))
}
