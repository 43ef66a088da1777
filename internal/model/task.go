package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task is a document in the `tasks` collection. UserID references the
// owning user and never changes after creation. ReminderTime is nullable;
// IsReminderSet records whether the user armed the reminder.
type Task struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	IsPredefined  bool               `bson:"isPredefined" json:"isPredefined"`
	ReminderTime  *time.Time         `bson:"reminderTime,omitempty" json:"reminderTime"`
	IsReminderSet bool               `bson:"isReminderSet" json:"isReminderSet"`
	UserID        primitive.ObjectID `bson:"user" json:"user"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
