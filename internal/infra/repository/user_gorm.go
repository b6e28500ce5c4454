package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/PainelServices01/user-admin-GO/internal/domain/user"
	"github.com/PainelServices01/user-admin-GO/internal/httperr"
	"github.com/PainelServices01/user-admin-GO/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *UserGormRepository) ListUsers(
	ctx context.Context,
) ([]models.User, error) {

	var users []models.User
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserGormRepository) CountAdmins(
	ctx context.Context,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("role = ?", domain.RoleAdmin).
		Count(&count).Error
	return count, err
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *UserGormRepository) CreateUser(
	ctx context.Context,
	u *models.User,
) error {

	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrBusiness(httperr.CodeEmailTaken)
		}
		return err
	}
	return nil
}

func (r *UserGormRepository) UpdateUser(
	ctx context.Context,
	u *models.User,
) error {

	// Save com mapa de colunas para que cep/state/city nulos também sejam
	// gravados (GORM ignora zero values em Updates com struct).
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", u.ID).
		Updates(map[string]any{
			"name":  u.Name,
			"cep":   u.CEP,
			"state": u.State,
			"city":  u.City,
			"role":  u.Role,
		}).Error
}

func (r *UserGormRepository) DeleteUser(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.User{}, id).Error
}

// --------------------------------------------------
// Atomicity
// --------------------------------------------------

func (r *UserGormRepository) Transaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UserGormRepository{db: tx})
	})
}

// isUniqueViolation reconhece a violação de chave única do Postgres (23505);
// o fallback via ErrDuplicatedKey cobre drivers com TranslateError habilitado.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
