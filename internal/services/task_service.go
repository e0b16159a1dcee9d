package services

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/jobsync-app/jobsync-backend/internal/dto"
	"github.com/jobsync-app/jobsync-backend/internal/models"
	"github.com/jobsync-app/jobsync-backend/internal/pagination"
	"github.com/jobsync-app/jobsync-backend/internal/repository"
)

type TaskService struct {
	tasks   *repository.TaskRepository
	clients *repository.ClientRepository
	workers *repository.WorkerRepository
}

func NewTaskService(tasks *repository.TaskRepository, clients *repository.ClientRepository, workers *repository.WorkerRepository) *TaskService {
	return &TaskService{tasks: tasks, clients: clients, workers: workers}
}

func (s *TaskService) Create(req *dto.CreateTaskRequest) (*models.Task, error) {
	if _, err := s.clients.FindByID(req.ClientID); err != nil {
		return nil, err
	}
	if req.WorkerID != nil {
		if _, err := s.workers.FindByID(*req.WorkerID); err != nil {
			return nil, err
		}
	}

	meta, err := metadataJSON(req.Metadata)
	if err != nil {
		return nil, err
	}

	taskType := models.TaskType(req.Type)
	if taskType == "" {
		taskType = models.TaskTypeOther
	}
	status := models.TaskStatusUnassigned
	if req.WorkerID != nil {
		status = models.TaskStatusInProgress
	}

	task := models.Task{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Type:        taskType,
		Status:      status,
		Deadline:    req.Deadline,
		ClientID:    req.ClientID,
		WorkerID:    req.WorkerID,
		Metadata:    meta,
	}
	if err := s.tasks.Create(&task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) Get(id uuid.UUID) (*models.Task, error) {
	return s.tasks.FindByID(id)
}

func (s *TaskService) List(f repository.TaskFilter, p pagination.Params) (*pagination.Result[models.Task], error) {
	tasks, total, err := s.tasks.List(f, p)
	if err != nil {
		return nil, err
	}
	return pagination.NewResult(tasks, total, p), nil
}

func (s *TaskService) Update(id uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.tasks.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Type != nil {
		task.Type = models.TaskType(*req.Type)
	}
	if req.Status != nil {
		task.Status = models.TaskStatus(*req.Status)
	}
	if req.Deadline != nil {
		task.Deadline = req.Deadline
	}
	if req.SubmittedAt != nil {
		task.SubmittedAt = req.SubmittedAt
	}
	if req.ClientPaymentDecided != nil {
		task.ClientPaymentDecided = *req.ClientPaymentDecided
	}
	if req.ClientPaymentMade != nil {
		task.ClientPaymentMade = *req.ClientPaymentMade
	}
	if req.WorkerPaymentDecided != nil {
		task.WorkerPaymentDecided = *req.WorkerPaymentDecided
	}
	if req.WorkerPaymentMade != nil {
		task.WorkerPaymentMade = *req.WorkerPaymentMade
	}
	if req.ClientID != nil {
		if _, err := s.clients.FindByID(*req.ClientID); err != nil {
			return nil, err
		}
		task.ClientID = *req.ClientID
	}
	if req.WorkerID != nil {
		if _, err := s.workers.FindByID(*req.WorkerID); err != nil {
			return nil, err
		}
		task.WorkerID = req.WorkerID
	}
	meta, err := metadataJSON(req.Metadata)
	if err != nil {
		return nil, err
	}
	if meta != nil {
		task.Metadata = meta
	}

	if err := s.tasks.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(id uuid.UUID) error {
	return s.tasks.Delete(id)
}

// Assign links a worker to a task. A task still in unassigned status is
// promoted to in_progress as part of the same call; the promotion fires at
// most once since any later assignment finds the task already past
// unassigned.
func (s *TaskService) Assign(req *dto.AssignTaskRequest) (*models.Task, error) {
	task, err := s.tasks.FindByID(req.TaskID)
	if err != nil {
		return nil, err
	}
	if _, err := s.workers.FindByID(req.WorkerID); err != nil {
		return nil, err
	}

	workerID := req.WorkerID
	task.WorkerID = &workerID
	if task.Status == models.TaskStatusUnassigned {
		task.Status = models.TaskStatusInProgress
		slog.Info("task promoted to in_progress", "task_id", task.ID, "worker_id", workerID)
	}

	if err := s.tasks.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}
