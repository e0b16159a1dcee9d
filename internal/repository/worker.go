package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobsync-app/jobsync-backend/internal/apperr"
	"github.com/jobsync-app/jobsync-backend/internal/models"
	"github.com/jobsync-app/jobsync-backend/internal/pagination"
)

type WorkerRepository struct {
	db *gorm.DB
}

func NewWorkerRepository(db *gorm.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

func (r *WorkerRepository) Create(worker *models.Worker) error {
	if worker.ID == uuid.Nil {
		worker.ID = uuid.New()
	}
	return translate(r.db.Create(worker).Error)
}

func (r *WorkerRepository) FindByID(id uuid.UUID) (*models.Worker, error) {
	var worker models.Worker
	if err := r.db.First(&worker, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("worker %s not found", id)
		}
		return nil, apperr.Internal(err)
	}
	return &worker, nil
}

func (r *WorkerRepository) FindByName(name string) (*models.Worker, error) {
	var worker models.Worker
	if err := r.db.First(&worker, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("worker %q not found", name)
		}
		return nil, apperr.Internal(err)
	}
	return &worker, nil
}

func (r *WorkerRepository) List(f WorkerFilter, p pagination.Params) ([]models.Worker, int64, error) {
	q := r.db.Model(&models.Worker{})
	if f.ID != uuid.Nil {
		q = q.Where("workers.id = ?", f.ID)
	}
	if f.Name != "" {
		q = q.Where("LOWER(workers.name) LIKE ?", containsPattern(f.Name))
	}
	if f.Country != "" {
		q = q.Where("LOWER(workers.country) LIKE ?", containsPattern(f.Country))
	}
	if f.InstituteName != "" {
		q = q.Joins("JOIN institutes ON institutes.id = workers.institute_id").
			Where("LOWER(institutes.name) LIKE ?", containsPattern(f.InstituteName))
	}
	if len(f.Specialties) > 0 {
		// A worker matches when any requested tag appears in the serialized
		// specialty list (OR across tags).
		or := r.db.Where("LOWER(workers.specialties) LIKE ?", containsPattern(f.Specialties[0]))
		for _, tag := range f.Specialties[1:] {
			or = or.Or("LOWER(workers.specialties) LIKE ?", containsPattern(tag))
		}
		q = q.Where(or)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperr.Internal(err)
	}

	var workers []models.Worker
	if err := q.Order("workers.name ASC").Limit(p.Limit).Offset(p.Offset()).Find(&workers).Error; err != nil {
		return nil, 0, apperr.Internal(err)
	}
	return workers, total, nil
}

func (r *WorkerRepository) Update(worker *models.Worker) error {
	return translate(r.db.Save(worker).Error)
}

func (r *WorkerRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Worker{}, "id = ?", id)
	if result.Error != nil {
		return apperr.Internal(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFoundf("worker %s not found", id)
	}
	return nil
}
