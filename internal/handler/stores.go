package handler

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/homekeep/home-maintenance-api/internal/model"
)

// UserStore is the slice of user persistence the handlers depend on. The
// mongo-backed repository.UserRepo satisfies it; tests substitute
// in-memory fakes.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (model.User, error)
	LinkTasks(ctx context.Context, id primitive.ObjectID, taskIDs []primitive.ObjectID) error
}

// TaskStore is the slice of task persistence the handlers depend on,
// satisfied by repository.TaskRepo.
type TaskStore interface {
	Create(ctx context.Context, t *model.Task) error
	CreateMany(ctx context.Context, tasks []model.Task) ([]primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (model.Task, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Task, error)
	UpdateReminder(ctx context.Context, id primitive.ObjectID, isSet bool, at *time.Time) (model.Task, error)
}
