// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/go-task-keeper/models"
)

func (a *App) register(ctx context.Context, args []string) error {
	var req models.RegisterRequest

	fs := newFlagSet("register")
	fs.StringVar(&req.Name, "name", "", "display name")
	fs.StringVar(&req.Email, "email", "", "email address")
	fs.StringVar(&req.Password, "password", "", "password, at least 6 characters")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	user, err := a.adapter.Register(ctx, req)
	if err != nil {
		return err
	}
	if err = a.tokens.Save(a.adapter.Token()); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered and logged in as %s\n", user.Email)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	var req models.LoginRequest

	fs := newFlagSet("login")
	fs.StringVar(&req.Email, "email", "", "email address")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	user, err := a.adapter.Login(ctx, req)
	if err != nil {
		return err
	}
	if err = a.tokens.Save(a.adapter.Token()); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", user.Email)
	return nil
}

// logout forgets the local token even when the server cannot be reached.
func (a *App) logout(ctx context.Context, _ []string) error {
	if a.adapter.Token() != "" {
		if err := a.adapter.Logout(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("server logout failed")
		}
	}
	if err := a.tokens.Clear(); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) whoami(ctx context.Context, _ []string) error {
	user, err := a.adapter.CurrentUser(ctx)
	if err != nil {
		return err
	}

	if user.Name != "" {
		fmt.Fprintf(a.out, "%s <%s>\n", user.Name, user.Email)
	} else {
		fmt.Fprintln(a.out, user.Email)
	}
	return nil
}

func (a *App) version(ctx context.Context, _ []string) error {
	fmt.Fprint(a.out, a.buildInfo.String())

	serverVersion, err := a.adapter.ServerVersion(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("server version unavailable")
		serverVersion = "unavailable"
	}
	fmt.Fprintf(a.out, "Server version: %s\n", serverVersion)
	return nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	return nil
}
