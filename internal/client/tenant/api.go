package tenant

import (
	"context"

	"github.com/dmitrijs2005/bootlang/internal/client/models"
)

type TaskAPI interface {
	ListTasks(ctx context.Context) ([]models.Task, error)
	GetTask(ctx context.Context, id int64) (*models.Task, error)
	CreateTask(ctx context.Context, in models.TaskInput) (*models.Task, error)
	UpdateTask(ctx context.Context, id int64, in models.TaskInput) (*models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}
