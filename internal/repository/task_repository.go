package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/homekeep/home-maintenance-api/internal/model"
)

// TaskRepo wraps the `tasks` collection.
type TaskRepo struct{ col *mongo.Collection }

func NewTaskRepo(db *mongo.Database) *TaskRepo {
	return &TaskRepo{col: db.Collection("tasks")}
}

// Create inserts a single task and fills in its generated id.
func (r *TaskRepo) Create(ctx context.Context, t *model.Task) error {
	res, err := r.col.InsertOne(ctx, t)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		t.ID = oid
	}
	return nil
}

// CreateMany bulk-inserts tasks and returns their ids in insert order.
// Used at registration to create the predefined catalog for a new user.
func (r *TaskRepo) CreateMany(ctx context.Context, tasks []model.Task) ([]primitive.ObjectID, error) {
	docs := make([]interface{}, len(tasks))
	for i, t := range tasks {
		docs[i] = t
	}
	res, err := r.col.InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(res.InsertedIDs))
	for _, id := range res.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok {
			ids = append(ids, oid)
		}
	}
	return ids, nil
}

// GetByID fetches a task by id.
func (r *TaskRepo) GetByID(ctx context.Context, id primitive.ObjectID) (model.Task, error) {
	var t model.Task
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Task{}, ErrTaskNotFound
	}
	return t, err
}

// GetByIDs fetches all tasks whose id is in ids, in whatever order the
// store returns them. Missing ids are skipped, not errors.
func (r *TaskRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Task, error) {
	tasks := []model.Task{}
	if len(ids) == 0 {
		return tasks, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateReminder overwrites the reminder flag and timestamp and returns the
// updated document. Both fields are set unconditionally; passing a nil time
// clears the stored reminder.
func (r *TaskRepo) UpdateReminder(ctx context.Context, id primitive.ObjectID, isSet bool, at *time.Time) (model.Task, error) {
	var t model.Task
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isReminderSet": isSet, "reminderTime": at}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Task{}, ErrTaskNotFound
	}
	return t, err
}
