package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jobsync-app/jobsync-backend/internal/apperr"
	"github.com/jobsync-app/jobsync-backend/internal/dto"
	"github.com/jobsync-app/jobsync-backend/internal/pagination"
	"github.com/jobsync-app/jobsync-backend/internal/repository"
	"github.com/jobsync-app/jobsync-backend/internal/services"
)

type TaskHandler struct {
	tasks *services.TaskService
}

func NewTaskHandler(tasks *services.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	task, err := h.tasks.Create(&req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

func (h *TaskHandler) List(c *fiber.Ctx) error {
	params, err := pagination.FromRequest(c)
	if err != nil {
		return err
	}
	id, err := queryID(c, "id")
	if err != nil {
		return err
	}
	clientID, err := queryID(c, "client_id")
	if err != nil {
		return err
	}
	workerID, err := queryID(c, "worker_id")
	if err != nil {
		return err
	}
	deadlineFrom, err := queryTime(c, "deadline_from")
	if err != nil {
		return err
	}
	deadlineTo, err := queryTime(c, "deadline_to")
	if err != nil {
		return err
	}

	filter := repository.TaskFilter{
		ID:           id,
		Name:         c.Query("name"),
		Type:         c.Query("type"),
		Status:       c.Query("status"),
		ClientID:     clientID,
		WorkerID:     workerID,
		DeadlineFrom: deadlineFrom,
		DeadlineTo:   deadlineTo,
	}
	result, err := h.tasks.List(filter, params)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *TaskHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	task, err := h.tasks.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(task)
}

func (h *TaskHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	task, err := h.tasks.Update(id, &req)
	if err != nil {
		return err
	}
	return c.JSON(task)
}

func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.tasks.Delete(id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "task deleted"})
}

// Assign handles the assignment endpoint; attaching a worker promotes an
// unassigned task to in_progress inside the service call.
func (h *TaskHandler) Assign(c *fiber.Ctx) error {
	var req dto.AssignTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return err
	}

	task, err := h.tasks.Assign(&req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}
