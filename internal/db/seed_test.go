package db_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/PainelServices01/user-admin-GO/internal/config"
	dbpkg "github.com/PainelServices01/user-admin-GO/internal/db"
	dmUser "github.com/PainelServices01/user-admin-GO/internal/domain/user"
	"github.com/PainelServices01/user-admin-GO/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// bancos em memória são por conexão: o pool precisa ficar em uma só
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		SeedAdminEmail:    "admin@example.com",
		SeedAdminPassword: "admin123",
	}
}

func TestSeedAdmin_CreatesAdminWhenNoneExists(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, dbpkg.SeedAdmin(db, testConfig()))

	var admin models.User
	require.NoError(t, db.Where("role = ?", dmUser.RoleAdmin).First(&admin).Error)
	require.Equal(t, "admin@example.com", admin.Email)
	require.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(admin.PasswordHash), []byte("admin123")))
}

func TestSeedAdmin_Idempotent(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()

	require.NoError(t, dbpkg.SeedAdmin(db, cfg))
	require.NoError(t, dbpkg.SeedAdmin(db, cfg))

	var count int64
	require.NoError(t, db.Model(&models.User{}).
		Where("role = ?", dmUser.RoleAdmin).
		Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestSeedAdmin_SkipsWhenAdminExistsWithOtherEmail(t *testing.T) {
	db := newTestDB(t)

	existing := models.User{
		Name:         "Chefe",
		Email:        "chefe@x.com",
		PasswordHash: "x",
		Role:         dmUser.RoleAdmin,
	}
	require.NoError(t, db.Create(&existing).Error)

	require.NoError(t, dbpkg.SeedAdmin(db, testConfig()))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}
