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

	"github.com/homekeep/home-maintenance-api/internal/config"
	"github.com/homekeep/home-maintenance-api/internal/middleware"
	"github.com/homekeep/home-maintenance-api/internal/model"
	"github.com/homekeep/home-maintenance-api/internal/repository"
	"github.com/homekeep/home-maintenance-api/internal/utils"
)

// predefinedTasks is the fixed maintenance catalog created for every new
// user at registration. The entries carry no recurrence interval, so their
// initial reminder time resolves to the registration timestamp; assigning
// real intervals here is a catalog change, not a code change.
var predefinedTasks = []struct {
	Name     string
	Interval string
}{
	{Name: "Change water filter"},
	{Name: "Test smoke/fire alarm"},
	{Name: "Replace air purifier filter"},
}

// UserHandler bundles dependencies for the user directory endpoints.
type UserHandler struct {
	Cfg   config.Config
	Users UserStore
	Tasks TaskStore
}

func NewUserHandler(cfg config.Config, users UserStore, tasks TaskStore) *UserHandler {
	return &UserHandler{Cfg: cfg, Users: users, Tasks: tasks}
}

// ----- DTOs -----

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResp struct {
	User  model.User `json:"user"`
	Token string     `json:"token"`
}
type loginResp struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	UserID  string `json:"userId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

// userWithTasks is the fetch response: the user record with its task
// references expanded into full task documents.
type userWithTasks struct {
	ID        primitive.ObjectID `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Token     string             `json:"token,omitempty"`
	Tasks     []model.Task       `json:"tasks"`
	CreatedAt time.Time          `json:"createdAt"`
}

// Register creates a user, issues a 1-hour access token, and seeds the
// predefined task catalog for the new account. The user insert, the task
// bulk insert, and the back-linking update are three separate writes with
// no transaction around them; a crash in between leaves the later steps
// unapplied.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "name, email, and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Users.GetByEmail(ctx, req.Email); err == nil {
		return c.JSON(http.StatusConflict, echo.Map{"message": "user already exists with this email"})
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		log.Printf("register: email lookup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "server error, please try again later"})
	}

	salt, err := utils.NewSalt()
	if err != nil {
		log.Printf("register: salt generation failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "server error, please try again later"})
	}

	// The token embeds the user id, so the id is assigned before the insert.
	userID := primitive.NewObjectID()
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, userID.Hex(), "", h.Cfg.AccessTTLMin)
	if err != nil {
		log.Printf("register: token issue failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "server error, please try again later"})
	}

	user := model.User{
		ID:        userID,
		Name:      req.Name,
		Email:     req.Email,
		Password:  utils.HashPassword(req.Password, salt),
		Salt:      salt,
		Token:     access.Token,
		TaskIDs:   []primitive.ObjectID{},
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Users.Create(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"message": "user already exists with this email"})
		}
		log.Printf("register: user insert failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "server error, please try again later"})
	}

	now := time.Now().UTC()
	seed := make([]model.Task, 0, len(predefinedTasks))
	for _, p := range predefinedTasks {
		at := utils.NextReminder(p.Interval, now)
		seed = append(seed, model.Task{
			Name:         p.Name,
			IsPredefined: true,
			ReminderTime: &at,
			UserID:       userID,
			CreatedAt:    now,
		})
	}
	taskIDs, err := h.Tasks.CreateMany(ctx, seed)
	if err != nil {
		log.Printf("register: predefined task insert failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "server error, please try again later"})
	}
	if err := h.Users.LinkTasks(ctx, userID, taskIDs); err != nil {
		log.Printf("register: task linking failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "server error, please try again later"})
	}
	user.TaskIDs = taskIDs

	return c.JSON(http.StatusCreated, registerResp{User: user, Token: access.Token})
}

// Login verifies credentials by re-deriving the stored hash from the
// stored salt. A fresh token is issued but, unlike registration, not
// written back to the user document.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "email and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
		}
		log.Printf("login: email lookup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "server error, please try again later"})
	}

	if !utils.VerifyPassword(u.Password, req.Password, u.Salt) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID.Hex(), u.Email, h.Cfg.AccessTTLMin)
	if err != nil {
		log.Printf("login: token issue failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "server error, please try again later"})
	}

	return c.JSON(http.StatusOK, loginResp{
		Message: "login successful",
		Token:   access.Token,
		UserID:  u.ID.Hex(),
		Name:    u.Name,
		Email:   u.Email,
	})
}

// GetUserWithTasks returns a user with the task reference list populated
// into full task documents. Callers may only fetch themselves.
func (h *UserHandler) GetUserWithTasks(c echo.Context) error {
	callerID, _ := c.Get(middleware.ContextUserID).(string)
	id := c.Param("id")
	if callerID != id {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "access denied"})
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
		}
		log.Printf("get user: lookup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "server error, please try again later"})
	}

	tasks, err := h.Tasks.GetByIDs(ctx, u.TaskIDs)
	if err != nil {
		log.Printf("get user: task populate failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "server error, please try again later"})
	}

	return c.JSON(http.StatusOK, userWithTasks{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Token:     u.Token,
		Tasks:     tasks,
		CreatedAt: u.CreatedAt,
	})
}
