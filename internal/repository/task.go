package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobsync-app/jobsync-backend/internal/apperr"
	"github.com/jobsync-app/jobsync-backend/internal/models"
	"github.com/jobsync-app/jobsync-backend/internal/pagination"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(task *models.Task) error {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	return translate(r.db.Create(task).Error)
}

func (r *TaskRepository) FindByID(id uuid.UUID) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("task %s not found", id)
		}
		return nil, apperr.Internal(err)
	}
	return &task, nil
}

// List orders by creation time descending, unlike the name-ordered entities.
func (r *TaskRepository) List(f TaskFilter, p pagination.Params) ([]models.Task, int64, error) {
	q := r.db.Model(&models.Task{})
	if f.ID != uuid.Nil {
		q = q.Where("id = ?", f.ID)
	}
	if f.Name != "" {
		q = q.Where("LOWER(name) LIKE ?", containsPattern(f.Name))
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ClientID != uuid.Nil {
		q = q.Where("client_id = ?", f.ClientID)
	}
	if f.WorkerID != uuid.Nil {
		q = q.Where("worker_id = ?", f.WorkerID)
	}
	if f.DeadlineFrom != nil {
		q = q.Where("deadline >= ?", f.DeadlineFrom)
	}
	if f.DeadlineTo != nil {
		q = q.Where("deadline <= ?", f.DeadlineTo)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperr.Internal(err)
	}

	var tasks []models.Task
	if err := q.Order("created_at DESC").Limit(p.Limit).Offset(p.Offset()).Find(&tasks).Error; err != nil {
		return nil, 0, apperr.Internal(err)
	}
	return tasks, total, nil
}

func (r *TaskRepository) Update(task *models.Task) error {
	return translate(r.db.Save(task).Error)
}

func (r *TaskRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Task{}, "id = ?", id)
	if result.Error != nil {
		return apperr.Internal(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFoundf("task %s not found", id)
	}
	return nil
}
