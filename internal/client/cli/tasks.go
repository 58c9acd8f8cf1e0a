package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/bootlang/internal/client/models"
	"github.com/dmitrijs2005/bootlang/internal/client/tenant"
)

func (a *App) Dashboard(_ context.Context, _ []string) error {
	return a.views.dashboard.Render(a.out)
}

func (a *App) Tasks(ctx context.Context, _ []string) error {
	v := a.views.tasks
	return a.show(ctx, v, v.Load(ctx))
}

func (a *App) AddTask(ctx context.Context, args []string) error {
	return a.editTask(ctx, 0, strings.Join(args, " "))
}

func (a *App) EditTask(ctx context.Context, args []string) error {
	id, err := parseID(args, "edittask <id>")
	if err != nil {
		return err
	}
	return a.editTask(ctx, id, "")
}

// editTask runs a one-shot ItemForm. For an edit, empty answers keep the
// loaded values and clearValue removes the description.
func (a *App) editTask(ctx context.Context, id int64, title string) error {
	form := tenant.NewItemForm(a.api, id)
	form.Mount(ctx)
	defer form.Unmount()

	if err := form.Load(ctx); err != nil {
		return a.show(ctx, form, err)
	}
	in := form.Input()

	if title == "" {
		answer, err := a.prompt(fmt.Sprintf("Title [%s]", in.Title))
		if err != nil {
			return err
		}
		if answer != "" || !form.Editing() {
			in.Title = answer
		}
	} else {
		in.Title = title
	}

	desc, err := a.prompt(fmt.Sprintf("Description ('%s' clears) [%s]", clearValue, in.Description))
	if err != nil {
		return err
	}
	switch desc {
	case "":
	case clearValue:
		in.Description = ""
	default:
		in.Description = desc
	}

	status, err := a.prompt(fmt.Sprintf("Status (%s) [%s]", strings.Join(models.TaskStatuses, ", "), in.Status))
	if err != nil {
		return err
	}
	if status != "" {
		in.Status = status
	}

	return a.show(ctx, form, form.Submit(ctx, in))
}

func (a *App) DeleteTask(ctx context.Context, args []string) error {
	id, err := parseID(args, "deltask <id>")
	if err != nil {
		return err
	}
	v := a.views.tasks
	return a.show(ctx, v, v.Delete(ctx, id, a.confirm))
}

// AllTasks shows the tenant admin panel; "alltasks delete <id>" removes a
// task from it.
func (a *App) AllTasks(ctx context.Context, args []string) error {
	v := a.views.allTasks
	if len(args) == 0 {
		return a.show(ctx, v, v.Load(ctx))
	}
	if args[0] != "delete" {
		return usageError{usage: "alltasks [delete <id>]"}
	}
	id, err := parseID(args[1:], "alltasks delete <id>")
	if err != nil {
		return err
	}
	return a.show(ctx, v, v.Delete(ctx, id, a.confirm))
}
