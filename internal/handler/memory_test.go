package handler_test

// In-memory implementations of handler.UserStore and handler.TaskStore so
// the tests can run the full route stack without a mongod.

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/homekeep/home-maintenance-api/internal/config"
	"github.com/homekeep/home-maintenance-api/internal/handler"
	"github.com/homekeep/home-maintenance-api/internal/model"
	"github.com/homekeep/home-maintenance-api/internal/repository"
	"github.com/homekeep/home-maintenance-api/internal/router"
)

const testSecret = "test-secret"

type memUserStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[primitive.ObjectID]model.User{}}
}

func (s *memUserStore) Create(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ex := range s.users {
		if ex.Email == u.Email {
			return repository.ErrEmailExists
		}
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	s.users[u.ID] = *u
	return nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, repository.ErrUserNotFound
}

func (s *memUserStore) GetByID(_ context.Context, id primitive.ObjectID) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (s *memUserStore) LinkTasks(_ context.Context, id primitive.ObjectID, taskIDs []primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.TaskIDs = append(u.TaskIDs, taskIDs...)
	s.users[id] = u
	return nil
}

type memTaskStore struct {
	mu    sync.Mutex
	tasks map[primitive.ObjectID]model.Task
}

func newMemTaskStore() *memTaskStore {
	return &memTaskStore{tasks: map[primitive.ObjectID]model.Task{}}
}

func (s *memTaskStore) Create(_ context.Context, t *model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	s.tasks[t.ID] = *t
	return nil
}

func (s *memTaskStore) CreateMany(_ context.Context, tasks []model.Task) ([]primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]primitive.ObjectID, 0, len(tasks))
	for _, t := range tasks {
		if t.ID.IsZero() {
			t.ID = primitive.NewObjectID()
		}
		s.tasks[t.ID] = t
		ids = append(ids, t.ID)
	}
	return ids, nil
}

func (s *memTaskStore) GetByID(_ context.Context, id primitive.ObjectID) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return model.Task{}, repository.ErrTaskNotFound
	}
	return t, nil
}

func (s *memTaskStore) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Task{}
	for _, id := range ids {
		if t, ok := s.tasks[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *memTaskStore) UpdateReminder(_ context.Context, id primitive.ObjectID, isSet bool, at *time.Time) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return model.Task{}, repository.ErrTaskNotFound
	}
	t.IsReminderSet = isSet
	t.ReminderTime = at
	s.tasks[id] = t
	return t, nil
}

// newTestAPI wires the full route table against in-memory stores.
func newTestAPI(t *testing.T) (*echo.Echo, *memUserStore, *memTaskStore) {
	t.Helper()

	cfg := config.Config{JWTSecret: testSecret, AccessTTLMin: 60}
	users := newMemUserStore()
	tasks := newMemTaskStore()

	e := echo.New()
	router.RegisterRoutes(e, handler.NewUserHandler(cfg, users, tasks), handler.NewTaskHandler(users, tasks), cfg.JWTSecret)
	return e, users, tasks
}

// doJSON performs a request against the test server, optionally with a JSON
// body and a bearer token, and returns the recorded response.
func doJSON(t *testing.T, e *echo.Echo, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// registerUser registers a user through the API and returns the decoded
// response body.
func registerUser(t *testing.T, e *echo.Echo, name, email, password string) (userID, token string) {
	t.Helper()

	rec := doJSON(t, e, "POST", "/api/users/register", "", map[string]string{
		"name": name, "email": email, "password": password,
	})
	if rec.Code != 201 {
		t.Fatalf("register %s: got status %d, body %s", email, rec.Code, rec.Body.String())
	}
	var resp struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	return resp.User.ID, resp.Token
}
