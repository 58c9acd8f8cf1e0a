// Package cli provides the interactive Boot_Lang command-line client.
//
// It wires configuration, session storage, the REST client, and the views
// behind a line-oriented REPL. The cobra root command starts the REPL;
// whoami, logout and version run once and exit.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL, and command for details.
package cli
