package cli

// commands lists the REPL verbs in help order.
func (a *App) commands() []command {
	return []command{
		{name: "login", usage: "login [username]", help: "sign in", scope: scopeGuest, run: a.Login},
		{name: "register", usage: "register [username]", help: "create an account", scope: scopeGuest, run: a.Register},
		{name: "welcome", usage: "welcome", help: "show the setup summary", run: a.Welcome},
		{name: "whoami", usage: "whoami", help: "show the signed-in user", run: a.Whoami},

		{name: "profile", usage: "profile", help: "change username or email", scope: scopeUser, run: a.Profile},
		{name: "passwd", usage: "passwd", help: "change your password", scope: scopeUser, run: a.ChangePassword},
		{name: "poc", usage: pocUsage, help: "POC builder", scope: scopeUser, run: a.POC},
		{name: "dashboard", usage: "dashboard", help: "task manager home", scope: scopeUser, run: a.Dashboard},
		{name: "tasks", usage: "tasks", help: "list your tasks", scope: scopeUser, run: a.Tasks},
		{name: "addtask", usage: "addtask [title]", help: "create a task", scope: scopeUser, run: a.AddTask},
		{name: "edittask", usage: "edittask <id>", help: "edit a task, '-' clears the description", scope: scopeUser, run: a.EditTask},
		{name: "deltask", usage: "deltask <id>", help: "delete a task", scope: scopeUser, run: a.DeleteTask},
		{name: "logout", usage: "logout", help: "sign out", scope: scopeUser, run: a.Logout},

		{name: "users", usage: "users", help: "list users", scope: scopeAdmin, run: a.Users},
		{name: "adduser", usage: "adduser [username]", help: "create a user", scope: scopeAdmin, run: a.AddUser},
		{name: "deluser", usage: "deluser <id>", help: "delete a user", scope: scopeAdmin, run: a.DeleteUser},
		{name: "resetpw", usage: "resetpw <id>", help: "reset a user's password", scope: scopeAdmin, run: a.ResetPassword},
		{name: "alltasks", usage: "alltasks [delete <id>]", help: "all tenant tasks", scope: scopeAdmin, run: a.AllTasks},
	}
}
