package services

import (
	"github.com/google/uuid"

	"github.com/jobsync-app/jobsync-backend/internal/apperr"
	"github.com/jobsync-app/jobsync-backend/internal/dto"
	"github.com/jobsync-app/jobsync-backend/internal/models"
	"github.com/jobsync-app/jobsync-backend/internal/pagination"
	"github.com/jobsync-app/jobsync-backend/internal/repository"
)

type ClientService struct {
	clients    *repository.ClientRepository
	institutes *repository.InstituteRepository
}

func NewClientService(clients *repository.ClientRepository, institutes *repository.InstituteRepository) *ClientService {
	return &ClientService{clients: clients, institutes: institutes}
}

func (s *ClientService) Create(req *dto.CreateClientRequest) (*models.Client, error) {
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

	client := models.Client{
		ID:          uuid.New(),
		Name:        req.Name,
		Country:     req.Country,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Currency:    req.Currency,
		InstituteID: req.InstituteID,
		Metadata:    meta,
	}
	if err := s.clients.Create(&client); err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *ClientService) Get(id uuid.UUID) (*models.Client, error) {
	return s.clients.FindByID(id)
}

func (s *ClientService) List(f repository.ClientFilter, p pagination.Params) (*pagination.Result[models.Client], error) {
	clients, total, err := s.clients.List(f, p)
	if err != nil {
		return nil, err
	}
	return pagination.NewResult(clients, total, p), nil
}

func (s *ClientService) Update(id uuid.UUID, req *dto.UpdateClientRequest) (*models.Client, error) {
	client, err := s.clients.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != client.Name {
		if err := s.checkNameFree(*req.Name, id); err != nil {
			return nil, err
		}
		client.Name = *req.Name
	}
	if req.Country != nil {
		client.Country = *req.Country
	}
	if req.PhoneNumber != nil {
		client.PhoneNumber = *req.PhoneNumber
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Currency != nil {
		client.Currency = *req.Currency
	}
	if req.InstituteID != nil {
		if _, err := s.institutes.FindByID(*req.InstituteID); err != nil {
			return nil, err
		}
		client.InstituteID = req.InstituteID
	}
	meta, err := metadataJSON(req.Metadata)
	if err != nil {
		return nil, err
	}
	if meta != nil {
		client.Metadata = meta
	}

	if err := s.clients.Update(client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) Delete(id uuid.UUID) error {
	return s.clients.Delete(id)
}

func (s *ClientService) checkNameFree(name string, selfID uuid.UUID) error {
	existing, err := s.clients.FindByName(name)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil
		}
		return err
	}
	if existing.ID == selfID {
		return nil
	}
	return apperr.Conflictf("client with name %q already exists", name)
}
