package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobsync-app/jobsync-backend/internal/apperr"
	"github.com/jobsync-app/jobsync-backend/internal/models"
	"github.com/jobsync-app/jobsync-backend/internal/pagination"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(client *models.Client) error {
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	return translate(r.db.Create(client).Error)
}

func (r *ClientRepository) FindByID(id uuid.UUID) (*models.Client, error) {
	var client models.Client
	if err := r.db.First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("client %s not found", id)
		}
		return nil, apperr.Internal(err)
	}
	return &client, nil
}

func (r *ClientRepository) FindByName(name string) (*models.Client, error) {
	var client models.Client
	if err := r.db.First(&client, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("client %q not found", name)
		}
		return nil, apperr.Internal(err)
	}
	return &client, nil
}

func (r *ClientRepository) List(f ClientFilter, p pagination.Params) ([]models.Client, int64, error) {
	q := r.db.Model(&models.Client{})
	if f.ID != uuid.Nil {
		q = q.Where("clients.id = ?", f.ID)
	}
	if f.Name != "" {
		q = q.Where("LOWER(clients.name) LIKE ?", containsPattern(f.Name))
	}
	if f.Country != "" {
		q = q.Where("LOWER(clients.country) LIKE ?", containsPattern(f.Country))
	}
	if f.InstituteName != "" {
		q = q.Joins("JOIN institutes ON institutes.id = clients.institute_id").
			Where("LOWER(institutes.name) LIKE ?", containsPattern(f.InstituteName))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperr.Internal(err)
	}

	var clients []models.Client
	if err := q.Order("clients.name ASC").Limit(p.Limit).Offset(p.Offset()).Find(&clients).Error; err != nil {
		return nil, 0, apperr.Internal(err)
	}
	return clients, total, nil
}

func (r *ClientRepository) Update(client *models.Client) error {
	return translate(r.db.Save(client).Error)
}

func (r *ClientRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Client{}, "id = ?", id)
	if result.Error != nil {
		return apperr.Internal(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFoundf("client %s not found", id)
	}
	return nil
}
