package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/homekeep/home-maintenance-api/internal/middleware"
	"github.com/homekeep/home-maintenance-api/internal/model"
	"github.com/homekeep/home-maintenance-api/internal/repository"
)

// TaskHandler bundles dependencies for the task registry endpoints. All
// routes here sit behind the JWT middleware.
type TaskHandler struct {
	Users UserStore
	Tasks TaskStore
}

func NewTaskHandler(users UserStore, tasks TaskStore) *TaskHandler {
	return &TaskHandler{Users: users, Tasks: tasks}
}

type createTaskReq struct {
	Name         string     `json:"name"`
	IsPredefined bool       `json:"isPredefined"`
	ReminderTime *time.Time `json:"reminderTime"`
	UserID       string     `json:"userId"`
}

type updateReminderReq struct {
	IsReminderSet bool       `json:"isReminderSet"`
	ReminderTime  *time.Time `json:"reminderTime"`
}

// CreateTask adds a task for the user named in the request body. The
// target userId is taken from the body, not from the caller's token: any
// authenticated caller may create tasks for any user. The task insert and
// the user back-link are two writes with no transaction between them.
func (h *TaskHandler) CreateTask(c echo.Context) error {
	var req createTaskReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.UserID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "task name and user ID are required"})
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
		}
		log.Printf("create task: user lookup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "server error, please try again later"})
	}

	task := model.Task{
		Name:         req.Name,
		IsPredefined: req.IsPredefined,
		ReminderTime: req.ReminderTime,
		UserID:       userID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.Tasks.Create(ctx, &task); err != nil {
		log.Printf("create task: insert failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "server error, please try again later"})
	}
	if err := h.Users.LinkTasks(ctx, userID, []primitive.ObjectID{task.ID}); err != nil {
		log.Printf("create task: linking failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "server error, please try again later"})
	}

	return c.JSON(http.StatusCreated, task)
}

// UpdateReminder overwrites a task's reminder flag and timestamp. Only the
// task's owner may update it; no validation is applied to the timestamp
// itself.
func (h *TaskHandler) UpdateReminder(c echo.Context) error {
	var req updateReminderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}

	taskID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "task not found"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	task, err := h.Tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "task not found"})
		}
		log.Printf("update reminder: task lookup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "server error, please try again later"})
	}

	callerID, _ := c.Get(middleware.ContextUserID).(string)
	if task.UserID.Hex() != callerID {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "access denied"})
	}

	updated, err := h.Tasks.UpdateReminder(ctx, taskID, req.IsReminderSet, req.ReminderTime)
	if err != nil {
		log.Printf("update reminder: update failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to update task reminder"})
	}

	return c.JSON(http.StatusOK, updated)
}
