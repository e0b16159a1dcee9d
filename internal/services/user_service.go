package services

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobsync-app/jobsync-backend/internal/apperr"
	"github.com/jobsync-app/jobsync-backend/internal/dto"
	"github.com/jobsync-app/jobsync-backend/internal/models"
	"github.com/jobsync-app/jobsync-backend/internal/pagination"
	"github.com/jobsync-app/jobsync-backend/internal/repository"
)

type UserService struct {
	users *repository.UserRepository
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Create(req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if _, err := s.users.FindByUsername(req.Username); err == nil {
		return nil, apperr.Conflictf("user with username %q already exists", req.Username)
	} else if !apperr.IsKind(err, apperr.KindNotFound) {
		return nil, err
	}
	if req.Email != "" {
		if _, err := s.users.FindByEmail(req.Email); err == nil {
			return nil, apperr.Conflictf("user with email %q already exists", req.Email)
		} else if !apperr.IsKind(err, apperr.KindNotFound) {
			return nil, err
		}
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		return nil, apperr.Validationf("%s", err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	meta, err := metadataJSON(req.Metadata)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         role,
		Metadata:     meta,
	}
	if req.Email != "" {
		email := req.Email
		user.Email = &email
	}
	if req.PhoneNumber != "" {
		phone := req.PhoneNumber
		user.PhoneNumber = &phone
	}

	if err := s.users.Create(&user); err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(&user)
	return &resp, nil
}

func (s *UserService) Get(id uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserService) List(f repository.UserFilter, p pagination.Params) (*pagination.Result[dto.UserResponse], error) {
	users, total, err := s.users.List(f, p)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.NewUserResponse(&users[i]))
	}
	return pagination.NewResult(responses, total, p), nil
}

func (s *UserService) Update(id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil && *req.Username != user.Username {
		if _, err := s.users.FindByUsername(*req.Username); err == nil {
			return nil, apperr.Conflictf("user with username %q already exists", *req.Username)
		} else if !apperr.IsKind(err, apperr.KindNotFound) {
			return nil, err
		}
		user.Username = *req.Username
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = req.Email
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.Role != nil {
		role, err := models.ParseRole(*req.Role)
		if err != nil {
			return nil, apperr.Validationf("%s", err.Error())
		}
		user.Role = role
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		user.PasswordHash = string(hash)
	}
	meta, err := metadataJSON(req.Metadata)
	if err != nil {
		return nil, err
	}
	if meta != nil {
		user.Metadata = meta
	}

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserService) Delete(id uuid.UUID) error {
	return s.users.Delete(id)
}
