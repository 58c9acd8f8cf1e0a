package tenant

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/bootlang/internal/client/views"
)

// Link is a dashboard entry pointing at a shell command.
type Link struct {
	Command     string
	Title       string
	Description string
}

var DashboardLinks = []Link{
	{Command: "tasks", Title: "View Tasks", Description: "See all your tasks"},
	{Command: "addtask", Title: "Create Task", Description: "Add a new task"},
	{Command: "alltasks", Title: "Admin Panel", Description: "Manage all data"},
}

type Dashboard struct{}

func NewDashboard() *Dashboard { return &Dashboard{} }

func (d *Dashboard) Render(w io.Writer) error {
	if err := views.RenderTitle(w, "Task Manager Dashboard"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "Welcome to the Task Manager POC. This is a simple task management system\ndemonstrating the tenant isolation pattern."); err != nil {
		return err
	}
	for _, l := range DashboardLinks {
		if _, err := fmt.Fprintf(w, "  %-9s %s: %s\n", l.Command, l.Title, l.Description); err != nil {
			return err
		}
	}
	return nil
}
