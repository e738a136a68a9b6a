// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

type command struct {
	usage string

	// needsSession commands fail with ErrNotLoggedIn when no token is
	// stored.
	needsSession bool

	run func(ctx context.Context, args []string) error
}

type App struct {
	adapter adapter.ServerAdapter
	tokens  *TokenStore

	out       io.Writer
	buildInfo models.AppBuildInfo

	// batchLimit caps concurrent requests of done, undone and rm.
	batchLimit int

	commands map[string]command

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, tokens *TokenStore, out io.Writer, buildInfo models.AppBuildInfo, logger *logger.Logger) *App {
	a := &App{
		adapter:    serverAdapter,
		tokens:     tokens,
		out:        out,
		buildInfo:  buildInfo,
		batchLimit: 4,
		logger:     logger,
	}

	a.commands = map[string]command{
		"register": {usage: "register -name NAME -email EMAIL -password PASSWORD", run: a.register},
		"login":    {usage: "login -email EMAIL -password PASSWORD", run: a.login},
		"logout":   {usage: "logout", run: a.logout},
		"whoami":   {usage: "whoami", needsSession: true, run: a.whoami},
		"list":     {usage: "list", needsSession: true, run: a.list},
		"add":      {usage: "add TITLE", needsSession: true, run: a.add},
		"show":     {usage: "show ID", needsSession: true, run: a.show},
		"rename":   {usage: "rename ID TITLE", needsSession: true, run: a.rename},
		"done":     {usage: "done ID...", needsSession: true, run: a.markDone},
		"undone":   {usage: "undone ID...", needsSession: true, run: a.markUndone},
		"rm":       {usage: "rm ID...", needsSession: true, run: a.remove},
		"version":  {usage: "version", run: a.version},
		"help":     {usage: "help", run: a.help},
	}

	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrNoCommand
	}

	name := args[0]
	cmd, ok := a.commands[name]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	token, err := a.tokens.Load()
	if err != nil {
		return err
	}
	a.adapter.SetToken(token)

	if cmd.needsSession && token == "" {
		return ErrNotLoggedIn
	}

	log := a.logger.With().Str("command", name).Logger()
	log.Debug().Msg("running command")

	if err = cmd.run(ctx, args[1:]); err != nil {
		log.Err(err).Msg("command failed")
		return err
	}

	return nil
}

func (a *App) help(context.Context, []string) error {
	a.printUsage()
	return nil
}

func (a *App) printUsage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "Usage: go-task-client COMMAND [ARGS]")
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Commands:")
	for _, name := range names {
		fmt.Fprintf(a.out, "  %s\n", a.commands[name].usage)
	}
}
