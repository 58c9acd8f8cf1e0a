package tenant

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/dmitrijs2005/bootlang/internal/client/models"
	"github.com/dmitrijs2005/bootlang/internal/client/views"
	"github.com/samber/lo"
)

const deletePrompt = "Are you sure you want to delete this task?"

// taskTable is the list state shared by ItemList and AdminPanel.
type taskTable struct {
	views.Base
	api   TaskAPI
	tasks []models.Task
}

func (v *taskTable) Tasks() []models.Task {
	var out []models.Task
	v.Do(func() { out = append(out, v.tasks...) })
	return out
}

func (v *taskTable) Load(ctx context.Context) error {
	cctx, op, err := v.Begin(ctx)
	if err != nil {
		return err
	}
	tasks, err := v.api.ListTasks(cctx)
	if ferr := v.Finish(op, func(s *views.State) {
		if err != nil {
			s.Error = views.ErrorText(err, "Failed to fetch tasks")
			return
		}
		v.tasks = tasks
	}); ferr != nil {
		return ferr
	}
	return err
}

// Delete removes the task after confirm agrees and, once the server
// accepted it, drops exactly that row from the local list.
func (v *taskTable) Delete(ctx context.Context, id int64, confirm views.Confirm) error {
	if confirm != nil && !confirm(deletePrompt) {
		return nil
	}
	cctx, op, err := v.Begin(ctx)
	if err != nil {
		return err
	}
	err = v.api.DeleteTask(cctx, id)
	if ferr := v.Finish(op, func(s *views.State) {
		if err != nil {
			s.Error = views.ErrorText(err, "Failed to delete task")
			return
		}
		v.tasks = lo.Reject(v.tasks, func(t models.Task, _ int) bool { return t.ID == id })
	}); ferr != nil {
		return ferr
	}
	return err
}

func statusLabel(s string) string {
	switch s {
	case models.TaskStatusInProgress:
		return "in progress"
	case "":
		return models.TaskStatusPending
	default:
		return s
	}
}

// ItemList shows the current user's tasks.
type ItemList struct {
	taskTable
}

func NewItemList(api TaskAPI) *ItemList {
	return &ItemList{taskTable{api: api}}
}

func (v *ItemList) Render(w io.Writer) error {
	if err := views.RenderTitle(w, "Tasks"); err != nil {
		return err
	}
	if err := views.RenderState(w, v.State()); err != nil {
		return err
	}
	tasks := v.Tasks()
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, "No tasks found. Create your first task with 'addtask'.")
		return err
	}
	rows := lo.Map(tasks, func(t models.Task, _ int) []string {
		desc := ""
		if t.Description != nil {
			desc = *t.Description
		}
		return []string{strconv.FormatInt(t.ID, 10), t.Title, views.OrDash(desc), statusLabel(t.Status), views.HumanTime(t.CreatedAt)}
	})
	return views.RenderTable(w, []string{"ID", "Title", "Description", "Status", "Created"}, rows)
}
