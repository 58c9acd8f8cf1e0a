package tenant

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/bootlang/internal/client/forms"
	"github.com/dmitrijs2005/bootlang/internal/client/models"
	"github.com/dmitrijs2005/bootlang/internal/client/views"
)

// ItemForm creates a task, or edits one when built with a non-zero id.
type ItemForm struct {
	views.Base
	api   TaskAPI
	id    int64
	input forms.Task
	saved *models.Task
}

func NewItemForm(api TaskAPI, id int64) *ItemForm {
	return &ItemForm{api: api, id: id, input: forms.Task{Status: models.TaskStatusPending}}
}

func (v *ItemForm) Editing() bool { return v.id != 0 }

// Input returns the current form values; after Load they hold the task.
func (v *ItemForm) Input() forms.Task {
	var in forms.Task
	v.Do(func() { in = v.input })
	return in
}

func (v *ItemForm) Saved() *models.Task {
	var t *models.Task
	v.Do(func() { t = v.saved })
	return t
}

// Load fetches the task being edited. It is a no-op for a new task.
func (v *ItemForm) Load(ctx context.Context) error {
	if !v.Editing() {
		return nil
	}
	cctx, op, err := v.Begin(ctx)
	if err != nil {
		return err
	}
	task, err := v.api.GetTask(cctx, v.id)
	if ferr := v.Finish(op, func(s *views.State) {
		if err != nil {
			s.Error = views.ErrorText(err, "Failed to fetch task")
			return
		}
		v.input = forms.Task{Title: task.Title, Status: task.Status}
		if task.Description != nil {
			v.input.Description = *task.Description
		}
		if v.input.Status == "" {
			v.input.Status = models.TaskStatusPending
		}
	}); ferr != nil {
		return ferr
	}
	return err
}

func (v *ItemForm) Submit(ctx context.Context, in forms.Task) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if in.Status == "" {
		in.Status = models.TaskStatusPending
	}
	if err := forms.Validate(in); err != nil {
		v.Fail(err.Error())
		return err
	}

	body := models.TaskInput{Title: in.Title, Status: in.Status}
	if in.Description != "" {
		body.Description = &in.Description
	}

	cctx, op, err := v.Begin(ctx)
	if err != nil {
		return err
	}

	var task *models.Task
	if v.Editing() {
		task, err = v.api.UpdateTask(cctx, v.id, body)
	} else {
		task, err = v.api.CreateTask(cctx, body)
	}

	if ferr := v.Finish(op, func(s *views.State) {
		if err != nil {
			s.Error = views.ErrorText(err, "Failed to save task")
			return
		}
		v.input = in
		v.saved = task
		if v.Editing() {
			s.Success = "Task updated"
		} else {
			s.Success = "Task created"
		}
	}); ferr != nil {
		return ferr
	}
	return err
}

func (v *ItemForm) Render(w io.Writer) error {
	title := "Create New Task"
	if v.Editing() {
		title = fmt.Sprintf("Edit Task #%d", v.id)
	}
	if err := views.RenderTitle(w, title); err != nil {
		return err
	}
	if err := views.RenderState(w, v.State()); err != nil {
		return err
	}
	in := v.Input()
	_, err := fmt.Fprintf(w, "Title:       %s\nDescription: %s\nStatus:      %s\n",
		views.OrDash(in.Title), views.OrDash(in.Description), statusLabel(in.Status))
	return err
}
