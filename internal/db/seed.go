package db

import (
	"log"

	"github.com/PainelServices01/user-admin-GO/internal/config"
	dmUser "github.com/PainelServices01/user-admin-GO/internal/domain/user"
	"github.com/PainelServices01/user-admin-GO/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin garante que exista ao menos um administrador. Roda a cada boot
// e só cria quando nenhum admin existe.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.User{}).
		Where("role = ?", dmUser.RoleAdmin).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin já existe, seed ignorado")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:         "Administrador",
		Email:        cfg.SeedAdminEmail,
		PasswordHash: string(hash),
		Role:         dmUser.RoleAdmin,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("Admin criado com sucesso")
	return nil
}
