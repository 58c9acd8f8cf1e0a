package cli

import (
	"context"
	"strconv"
	"strings"
)

const pocUsage = "poc create|docs|upload|rmdoc|chat|generate|list|files|download|update"

// POC dispatches the builder subcommands.
func (a *App) POC(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError{usage: pocUsage}
	}
	v := a.views.poc
	sub, rest := args[0], args[1:]

	switch sub {
	case "create":
		desc := strings.Join(rest, " ")
		if desc == "" {
			var err error
			if desc, err = a.prompt("Describe the POC"); err != nil {
				return err
			}
		}
		return a.show(ctx, v, v.CreateDemo(ctx, desc))

	case "docs":
		return a.show(ctx, v, v.LoadDocuments(ctx))

	case "upload":
		if len(rest) != 1 {
			return usageError{usage: "poc upload <path>"}
		}
		return a.show(ctx, v, v.Upload(ctx, rest[0]))

	case "rmdoc":
		if len(rest) != 1 {
			return usageError{usage: "poc rmdoc <id>"}
		}
		id, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return usageError{usage: "poc rmdoc <id>"}
		}
		return a.show(ctx, v, v.DeleteDocument(ctx, id, a.confirm))

	case "chat":
		prompt := strings.Join(rest, " ")
		if prompt == "" {
			var err error
			if prompt, err = a.prompt("Message"); err != nil {
				return err
			}
		}
		return a.show(ctx, v, v.Chat(ctx, prompt))

	case "generate":
		return a.show(ctx, v, v.Generate(ctx))

	case "list":
		return a.show(ctx, v, v.LoadPOCs(ctx))

	case "files":
		if len(rest) != 1 {
			return usageError{usage: "poc files <poc_id>"}
		}
		return a.show(ctx, v, v.ShowFiles(ctx, rest[0]))

	case "download":
		if len(rest) < 1 || len(rest) > 2 {
			return usageError{usage: "poc download <poc_id> [path]"}
		}
		path := rest[0] + ".zip"
		if len(rest) == 2 {
			path = rest[1]
		}
		return a.show(ctx, v, v.Download(ctx, rest[0], path))

	case "update":
		if len(rest) != 1 {
			return usageError{usage: "poc update <poc_id>"}
		}
		return a.show(ctx, v, v.Update(ctx, rest[0]))

	default:
		return usageError{usage: pocUsage}
	}
}
