package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dmitrijs2005/bootlang/internal/buildinfo"
	"github.com/dmitrijs2005/bootlang/internal/client/client"
	"github.com/dmitrijs2005/bootlang/internal/client/config"
	"github.com/dmitrijs2005/bootlang/internal/client/services"
	"github.com/dmitrijs2005/bootlang/internal/client/session"
	"github.com/dmitrijs2005/bootlang/internal/client/storage"
	"github.com/dmitrijs2005/bootlang/internal/client/tenant"
	"github.com/dmitrijs2005/bootlang/internal/client/views"
	"github.com/dmitrijs2005/bootlang/internal/logging"
)

type App struct {
	config         *config.Config
	log            logging.Logger
	auth           *session.Auth
	api            *client.Client
	authService    services.AuthService
	accountService services.AccountService
	reader         *bufio.Reader
	out            io.Writer

	// ctx bounds the views' lifetimes.
	ctx   context.Context
	views *viewSet
	token string
	unsub func()
	close func() error
}

// viewSet holds the long-lived views of one signed-in identity.
type viewSet struct {
	admin     *views.AdminPanel
	settings  *views.UserSettings
	poc       *views.POCBuilder
	dashboard *tenant.Dashboard
	tasks     *tenant.ItemList
	allTasks  *tenant.AdminPanel
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	repo, closeRepo, err := storage.OpenSlots(ctx, storage.Options{
		Backend:   c.Storage.Backend,
		Path:      c.Storage.Path,
		RedisAddr: c.Storage.RedisAddr,
	})
	if err != nil {
		log.Error(ctx, "error opening session storage", "backend", c.Storage.Backend, "error", err)
		return nil, err
	}

	auth := session.NewAuth(session.NewStore(repo, log), log)
	if err := auth.Init(ctx); err != nil {
		return nil, errors.Join(fmt.Errorf("error restoring session: %w", err), closeRepo())
	}

	api := client.New(client.Options{
		BaseURL:      client.ResolveBaseURL(c.APIURL, c.Hostname),
		TenantPrefix: c.TenantPrefix,
		Timeout:      c.RequestTimeout,
		Headers:      auth,
		Logger:       log,
	})

	a := &App{
		config:         c,
		log:            log,
		auth:           auth,
		api:            api,
		authService:    services.NewAuthService(api, auth, log),
		accountService: services.NewAccountService(api, auth),
		reader:         bufio.NewReader(os.Stdin),
		out:            os.Stdout,
		ctx:            ctx,
		token:          auth.Token(),
		close:          closeRepo,
	}
	a.views = a.newViews()
	a.unsub = auth.Subscribe(a.onSessionChange)

	log.Debug(ctx, "client ready", "base_url", api.BaseURL(), "backend", c.Storage.Backend)
	return a, nil
}

func (a *App) newViews() *viewSet {
	vs := &viewSet{
		admin:     views.NewAdminPanel(a.api, a.auth),
		settings:  views.NewUserSettings(a.accountService, a.auth),
		poc:       views.NewPOCBuilder(a.api),
		dashboard: tenant.NewDashboard(),
		tasks:     tenant.NewItemList(a.api),
		allTasks:  tenant.NewAdminPanel(a.api, a.auth),
	}
	vs.admin.Mount(a.ctx)
	vs.settings.Mount(a.ctx)
	vs.poc.Mount(a.ctx)
	vs.tasks.Mount(a.ctx)
	vs.allTasks.Mount(a.ctx)
	return vs
}

func (vs *viewSet) unmount() {
	vs.admin.Unmount()
	vs.settings.Unmount()
	vs.poc.Unmount()
	vs.tasks.Unmount()
	vs.allTasks.Unmount()
}

// onSessionChange rebuilds the views when the signed-in identity changes,
// so nothing loaded for one user is shown to the next. Profile updates keep
// the token and leave the views alone.
func (a *App) onSessionChange(s session.Snapshot) {
	if s.Token == a.token {
		return
	}
	a.token = s.Token
	a.views.unmount()
	a.views = a.newViews()
}

// Close unmounts the views, detaches from the session and releases the
// storage backend.
func (a *App) Close() error {
	a.unsub()
	a.views.unmount()
	a.auth.Close()
	return a.close()
}

// Run prints the banner and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	buildinfo.PrintBuildData(a.out)
	fmt.Fprintln(a.out, "Welcome to Boot_Lang CLI (type 'help' for commands)")
	runREPL(session.WithAuth(ctx, a.auth), a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool { return a.auth.IsAuthenticated() }

func (a *App) isAdmin() bool { return a.auth.IsAdmin() }

func (a *App) getStatus() string {
	u := a.auth.User()
	if u == nil || !a.auth.IsAuthenticated() {
		return ""
	}
	if u.IsAdmin {
		return fmt.Sprintf("(%s admin)", u.Username)
	}
	return fmt.Sprintf("(%s)", u.Username)
}

type renderer interface {
	Render(w io.Writer) error
}

// show renders v after an action. Failures the view keeps in its state
// are displayed by Render; gate and redirect errors go back to the REPL.
func (a *App) show(ctx context.Context, v renderer, err error) error {
	if err != nil {
		a.log.Debug(ctx, "view action failed", "error", err)
		switch {
		case errors.Is(err, views.ErrRedirect),
			errors.Is(err, views.ErrBusy),
			errors.Is(err, views.ErrUnmounted),
			errors.Is(err, context.Canceled):
			return err
		}
	}
	return v.Render(a.out)
}

func (a *App) prompt(text string) (string, error) {
	return getSimpleText(a.reader, text, a.out)
}

// argOrPrompt returns args[i] when present and asks for it otherwise.
func (a *App) argOrPrompt(args []string, i int, text string) (string, error) {
	if i < len(args) {
		return args[i], nil
	}
	return a.prompt(text)
}

func (a *App) confirm(text string) bool {
	return getConfirm(a.reader, text, a.out)
}

func parseID(args []string, usage string) (int64, error) {
	if len(args) == 0 {
		return 0, usageError{usage: usage}
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, usageError{usage: usage}
	}
	return id, nil
}
