package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobsync-app/jobsync-backend/internal/apperr"
	"github.com/jobsync-app/jobsync-backend/internal/models"
	"github.com/jobsync-app/jobsync-backend/internal/pagination"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return translate(r.db.Create(user).Error)
}

func (r *UserRepository) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("user %s not found", id)
		}
		return nil, apperr.Internal(err)
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("user %q not found", username)
		}
		return nil, apperr.Internal(err)
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("user with email %q not found", email)
		}
		return nil, apperr.Internal(err)
	}
	return &user, nil
}

func (r *UserRepository) List(f UserFilter, p pagination.Params) ([]models.User, int64, error) {
	q := r.db.Model(&models.User{})
	if f.Name != "" {
		q = q.Where("LOWER(name) LIKE ?", containsPattern(f.Name))
	}
	if f.Username != "" {
		q = q.Where("LOWER(username) LIKE ?", containsPattern(f.Username))
	}
	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperr.Internal(err)
	}

	var users []models.User
	if err := q.Order("name ASC").Limit(p.Limit).Offset(p.Offset()).Find(&users).Error; err != nil {
		return nil, 0, apperr.Internal(err)
	}
	return users, total, nil
}

func (r *UserRepository) Update(user *models.User) error {
	return translate(r.db.Save(user).Error)
}

func (r *UserRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return apperr.Internal(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFoundf("user %s not found", id)
	}
	return nil
}
