package services

import (
	"github.com/google/uuid"

	"github.com/jobsync-app/jobsync-backend/internal/apperr"
	"github.com/jobsync-app/jobsync-backend/internal/dto"
	"github.com/jobsync-app/jobsync-backend/internal/models"
	"github.com/jobsync-app/jobsync-backend/internal/pagination"
	"github.com/jobsync-app/jobsync-backend/internal/repository"
)

type WorkerService struct {
	workers    *repository.WorkerRepository
	institutes *repository.InstituteRepository
}

func NewWorkerService(workers *repository.WorkerRepository, institutes *repository.InstituteRepository) *WorkerService {
	return &WorkerService{workers: workers, institutes: institutes}
}

func (s *WorkerService) Create(req *dto.CreateWorkerRequest) (*models.Worker, error) {
	if err := s.checkNameFree(req.Name, uuid.Nil); err != nil {
		return nil, err
	}
	if req.InstituteID != nil {
		if _, err := s.institutes.FindByID(*req.InstituteID); err != nil {
			return nil, err
		}
	}

	meta, err := metadataJSON(req.Metadata)
	if err != nil {
		return nil, err
	}

	worker := models.Worker{
		ID:          uuid.New(),
		Name:        req.Name,
		Country:     req.Country,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Currency:    req.Currency,
		InstituteID: req.InstituteID,
		Specialties: req.Specialties,
		Metadata:    meta,
	}
	if err := s.workers.Create(&worker); err != nil {
		return nil, err
	}
	return &worker, nil
}

func (s *WorkerService) Get(id uuid.UUID) (*models.Worker, error) {
	return s.workers.FindByID(id)
}

func (s *WorkerService) List(f repository.WorkerFilter, p pagination.Params) (*pagination.Result[models.Worker], error) {
	workers, total, err := s.workers.List(f, p)
	if err != nil {
		return nil, err
	}
	return pagination.NewResult(workers, total, p), nil
}

func (s *WorkerService) Update(id uuid.UUID, req *dto.UpdateWorkerRequest) (*models.Worker, error) {
	worker, err := s.workers.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != worker.Name {
		if err := s.checkNameFree(*req.Name, id); err != nil {
			return nil, err
		}
		worker.Name = *req.Name
	}
	if req.Country != nil {
		worker.Country = *req.Country
	}
	if req.PhoneNumber != nil {
		worker.PhoneNumber = *req.PhoneNumber
	}
	if req.Email != nil {
		worker.Email = *req.Email
	}
	if req.Currency != nil {
		worker.Currency = *req.Currency
	}
	if req.InstituteID != nil {
		if _, err := s.institutes.FindByID(*req.InstituteID); err != nil {
			return nil, err
		}
		worker.InstituteID = req.InstituteID
	}
	if req.Specialties != nil {
		worker.Specialties = req.Specialties
	}
	meta, err := metadataJSON(req.Metadata)
	if err != nil {
		return nil, err
	}
	if meta != nil {
		worker.Metadata = meta
	}

	if err := s.workers.Update(worker); err != nil {
		return nil, err
	}
	return worker, nil
}

func (s *WorkerService) Delete(id uuid.UUID) error {
	return s.workers.Delete(id)
}

func (s *WorkerService) checkNameFree(name string, selfID uuid.UUID) error {
	existing, err := s.workers.FindByName(name)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil
		}
		return err
	}
	if existing.ID == selfID {
		return nil
	}
	return apperr.Conflictf("worker with name %q already exists", name)
}
