package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/bootlang/internal/client/models"
)

// taskEnvelope covers the tenant routes, which answer 200 with an "error"
// field instead of a 404.
type taskEnvelope struct {
	Task    *models.Task `json:"task"`
	Message string       `json:"message"`
	Error   string       `json:"error"`
}

func (e taskEnvelope) err() error {
	if e.Error == "" {
		return nil
	}
	return &APIError{Status: http.StatusOK, Detail: e.Error, Kind: ErrNotFound}
}

func (c *Client) tasksPath() string { return c.tenantPrefix + "/tasks" }

func (c *Client) taskPath(id int64) string { return fmt.Sprintf("%s/tasks/%d", c.tenantPrefix, id) }

// ListTasks returns the tasks in server order.
func (c *Client) ListTasks(ctx context.Context) ([]models.Task, error) {
	var resp struct {
		Tasks []models.Task `json:"tasks"`
		Error string        `json:"error"`
	}
	if err := c.doJSON(ctx, http.MethodGet, c.tasksPath(), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, taskEnvelope{Error: resp.Error}.err()
	}
	return resp.Tasks, nil
}

// GetTask accepts both a {"task": ...} envelope and a bare task object.
func (c *Client) GetTask(ctx context.Context, id int64) (*models.Task, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, c.taskPath(id), nil, &raw); err != nil {
		return nil, err
	}

	var env taskEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("error decoding task: %w", err)
	}
	if err := env.err(); err != nil {
		return nil, err
	}
	if env.Task != nil {
		return env.Task, nil
	}

	var t models.Task
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("error decoding task: %w", err)
	}
	return &t, nil
}

func (c *Client) CreateTask(ctx context.Context, in models.TaskInput) (*models.Task, error) {
	return c.writeTask(ctx, http.MethodPost, c.tasksPath(), in)
}

func (c *Client) UpdateTask(ctx context.Context, id int64, in models.TaskInput) (*models.Task, error) {
	return c.writeTask(ctx, http.MethodPut, c.taskPath(id), in)
}

func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	var env taskEnvelope
	if err := c.doJSON(ctx, http.MethodDelete, c.taskPath(id), nil, &env); err != nil {
		return err
	}
	return env.err()
}

func (c *Client) writeTask(ctx context.Context, method, path string, in models.TaskInput) (*models.Task, error) {
	var env taskEnvelope
	if err := c.doJSON(ctx, method, path, in, &env); err != nil {
		return nil, err
	}
	if err := env.err(); err != nil {
		return nil, err
	}
	if env.Task == nil {
		return nil, fmt.Errorf("error decoding task: empty response")
	}
	return env.Task, nil
}
