package services

import (
	"github.com/google/uuid"

	"github.com/jobsync-app/jobsync-backend/internal/apperr"
	"github.com/jobsync-app/jobsync-backend/internal/dto"
	"github.com/jobsync-app/jobsync-backend/internal/models"
	"github.com/jobsync-app/jobsync-backend/internal/pagination"
	"github.com/jobsync-app/jobsync-backend/internal/repository"
)

type InstituteService struct {
	institutes *repository.InstituteRepository
}

func NewInstituteService(institutes *repository.InstituteRepository) *InstituteService {
	return &InstituteService{institutes: institutes}
}

func (s *InstituteService) Create(req *dto.CreateInstituteRequest) (*models.Institute, error) {
	if err := s.checkNameFree(req.Name, uuid.Nil); err != nil {
		return nil, err
	}

	meta, err := metadataJSON(req.Metadata)
	if err != nil {
		return nil, err
	}

	inst := models.Institute{
		ID:       uuid.New(),
		Name:     req.Name,
		Country:  req.Country,
		Metadata: meta,
	}
	if err := s.institutes.Create(&inst); err != nil {
		return nil, err
	}
	return &inst, nil
}

func (s *InstituteService) Get(id uuid.UUID) (*models.Institute, error) {
	return s.institutes.FindByID(id)
}

func (s *InstituteService) List(f repository.InstituteFilter, p pagination.Params) (*pagination.Result[models.Institute], error) {
	institutes, total, err := s.institutes.List(f, p)
	if err != nil {
		return nil, err
	}
	return pagination.NewResult(institutes, total, p), nil
}

func (s *InstituteService) Update(id uuid.UUID, req *dto.UpdateInstituteRequest) (*models.Institute, error) {
	inst, err := s.institutes.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != inst.Name {
		if err := s.checkNameFree(*req.Name, id); err != nil {
			return nil, err
		}
		inst.Name = *req.Name
	}
	if req.Country != nil {
		inst.Country = *req.Country
	}
	meta, err := metadataJSON(req.Metadata)
	if err != nil {
		return nil, err
	}
	if meta != nil {
		inst.Metadata = meta
	}

	if err := s.institutes.Update(inst); err != nil {
		return nil, err
	}
	return inst, nil
}

func (s *InstituteService) Delete(id uuid.UUID) error {
	return s.institutes.Delete(id)
}

func (s *InstituteService) checkNameFree(name string, selfID uuid.UUID) error {
	existing, err := s.institutes.FindByName(name)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil
		}
		return err
	}
	if existing.ID == selfID {
		return nil
	}
	return apperr.Conflictf("institute with name %q already exists", name)
}
