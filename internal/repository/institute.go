package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobsync-app/jobsync-backend/internal/apperr"
	"github.com/jobsync-app/jobsync-backend/internal/models"
	"github.com/jobsync-app/jobsync-backend/internal/pagination"
	"github.com/jobsync-app/jobsync-backend/internal/search"
)

type InstituteRepository struct {
	db     *gorm.DB
	search search.NameSearch
}

func NewInstituteRepository(db *gorm.DB, s search.NameSearch) *InstituteRepository {
	return &InstituteRepository{db: db, search: s}
}

func (r *InstituteRepository) Create(inst *models.Institute) error {
	if inst.ID == uuid.Nil {
		inst.ID = uuid.New()
	}
	return translate(r.db.Create(inst).Error)
}

func (r *InstituteRepository) FindByID(id uuid.UUID) (*models.Institute, error) {
	var inst models.Institute
	if err := r.db.First(&inst, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("institute %s not found", id)
		}
		return nil, apperr.Internal(err)
	}
	return &inst, nil
}

func (r *InstituteRepository) FindByName(name string) (*models.Institute, error) {
	var inst models.Institute
	if err := r.db.First(&inst, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("institute %q not found", name)
		}
		return nil, apperr.Internal(err)
	}
	return &inst, nil
}

// List applies the supplied filters conjunctively. A name filter goes through
// the fuzzy matcher; everything else is plain containment or equality.
func (r *InstituteRepository) List(f InstituteFilter, p pagination.Params) ([]models.Institute, int64, error) {
	q := r.db.Model(&models.Institute{})
	if f.ID != uuid.Nil {
		q = q.Where("id = ?", f.ID)
	}
	if f.Country != "" {
		q = q.Where("LOWER(country) LIKE ?", containsPattern(f.Country))
	}

	var institutes []models.Institute
	if f.Name != "" {
		total, err := r.search.Run(q, "name", f.Name, p.Limit, p.Offset(), &institutes)
		if err != nil {
			return nil, 0, apperr.Internal(err)
		}
		return institutes, total, nil
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperr.Internal(err)
	}
	if err := q.Order("name ASC").Limit(p.Limit).Offset(p.Offset()).Find(&institutes).Error; err != nil {
		return nil, 0, apperr.Internal(err)
	}
	return institutes, total, nil
}

func (r *InstituteRepository) Update(inst *models.Institute) error {
	return translate(r.db.Save(inst).Error)
}

func (r *InstituteRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Institute{}, "id = ?", id)
	if result.Error != nil {
		return apperr.Internal(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFoundf("institute %s not found", id)
	}
	return nil
}
