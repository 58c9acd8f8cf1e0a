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

// AdminPanel lists every tenant task with a delete action. It is limited to
// admins like the user admin panel, which is stricter than the web page it
// mirrors.
type AdminPanel struct {
	taskTable
	auth views.AuthState
}

func NewAdminPanel(api TaskAPI, auth views.AuthState) *AdminPanel {
	return &AdminPanel{taskTable: taskTable{api: api}, auth: auth}
}

func (v *AdminPanel) Load(ctx context.Context) error {
	if !v.auth.IsAdmin() {
		return views.ErrRedirect
	}
	return v.taskTable.Load(ctx)
}

func (v *AdminPanel) Delete(ctx context.Context, id int64, confirm views.Confirm) error {
	if !v.auth.IsAdmin() {
		return views.ErrRedirect
	}
	return v.taskTable.Delete(ctx, id, confirm)
}

func (v *AdminPanel) Render(w io.Writer) error {
	if !v.auth.IsAdmin() {
		return nil
	}
	if err := views.RenderTitle(w, "Admin Panel - All Tasks"); err != nil {
		return err
	}
	if err := views.RenderState(w, v.State()); err != nil {
		return err
	}
	tasks := v.Tasks()
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, "No tasks.")
		return err
	}
	rows := lo.Map(tasks, func(t models.Task, _ int) []string {
		return []string{
			strconv.FormatInt(t.ID, 10),
			t.Title,
			statusLabel(t.Status),
			strconv.FormatInt(t.UserID, 10),
			views.HumanTime(t.CreatedAt),
			views.HumanTime(t.UpdatedAt),
		}
	})
	if err := views.RenderTable(w, []string{"ID", "Title", "Status", "User ID", "Created", "Updated"}, rows); err != nil {
		return err
	}

	counts := lo.CountValuesBy(tasks, func(t models.Task) string { return statusLabel(t.Status) })
	_, err := fmt.Fprintf(w, "Total: %d  pending: %d  in progress: %d  completed: %d\n",
		len(tasks), counts[models.TaskStatusPending], counts["in progress"], counts[models.TaskStatusCompleted])
	return err
}
