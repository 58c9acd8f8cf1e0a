package models

import "github.com/dmitrijs2005/bootlang/internal/timex"

// Task statuses understood by the tenant task manager.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

// TaskStatuses lists the valid statuses in display order.
var TaskStatuses = []string{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted}

// Task is a tenant-scoped record of the generated task-manager demo.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      string     `json:"status"`
	UserID      int64      `json:"user_id"`
	CreatedAt   timex.Time `json:"created_at"`
	UpdatedAt   timex.Time `json:"updated_at"`
}

// TaskInput is the payload for create and update requests.
type TaskInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
}
