// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-users-service/internal/adapter"
	"github.com/MKhiriev/go-users-service/internal/logger"
	"github.com/MKhiriev/go-users-service/models"
)

// tokenEnv is read when -token is not given.
const tokenEnv = "USERS_TOKEN"

var (
	errNoCommand      = errors.New("no command given")
	errUnknownCommand = errors.New("unknown command")
	errMissingUserID  = errors.New("-id is required")
)

const usage = `usage: client [-server URL] [-timeout D] [-log-level L] <command> [flags]

commands:
  register  -username U -password P [-first-name F] [-full-name N] [-last-name L]
  login     -username U -password P
  me        [-token T]
  get       -id N [-token T]
  list      [-limit N] [-offset N] [-token T]
  update    [-id N] [-first-name F] [-full-name N] [-last-name L] [-token T]
  delete    -id N [-token T]
  version

-token defaults to $USERS_TOKEN.
`

type cli struct {
	adapter adapter.UsersAdapter
	out     io.Writer
	logger  *logger.Logger
}

func newCLI(usersAdapter adapter.UsersAdapter, out io.Writer, logger *logger.Logger) *cli {
	return &cli{adapter: usersAdapter, out: out, logger: logger}
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		_, _ = fmt.Fprint(c.out, usage)
		return errNoCommand
	}

	command, rest := args[0], args[1:]
	c.logger.Debug().Str("command", command).Msg("running command")

	switch command {
	case "register":
		return c.register(ctx, rest)
	case "login":
		return c.login(ctx, rest)
	case "me":
		return c.me(ctx, rest)
	case "get":
		return c.get(ctx, rest)
	case "list":
		return c.list(ctx, rest)
	case "update":
		return c.update(ctx, rest)
	case "delete":
		return c.delete(ctx, rest)
	case "version":
		printBuildInfo()
		return nil
	case "help", "-h", "--help":
		_, _ = fmt.Fprint(c.out, usage)
		return nil
	default:
		return fmt.Errorf("%w: %s", errUnknownCommand, command)
	}
}

func (c *cli) register(ctx context.Context, args []string) error {
	var request models.RegisterRequest

	fs := newFlagSet("register")
	fs.StringVar(&request.Username, "username", "", "")
	fs.StringVar(&request.Password, "password", "", "")
	fs.StringVar(&request.FirstName, "first-name", "", "")
	fs.StringVar(&request.FullName, "full-name", "", "")
	fs.StringVar(&request.LastName, "last-name", "", "")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := c.adapter.Register(ctx, request)
	if err != nil {
		return err
	}
	return c.print(user)
}

func (c *cli) login(ctx context.Context, args []string) error {
	var request models.LoginRequest

	fs := newFlagSet("login")
	fs.StringVar(&request.Username, "username", "", "")
	fs.StringVar(&request.Password, "password", "", "")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := c.adapter.Login(ctx, request)
	if err != nil {
		return err
	}
	return c.print(resp)
}

func (c *cli) me(ctx context.Context, args []string) error {
	fs := newFlagSet("me")
	token := tokenFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	c.adapter.SetToken(*token)
	user, err := c.adapter.GetCurrentUser(ctx)
	if err != nil {
		return err
	}
	return c.print(user)
}

func (c *cli) get(ctx context.Context, args []string) error {
	fs := newFlagSet("get")
	token := tokenFlag(fs)
	userID := fs.Int64("id", 0, "")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *userID == 0 {
		return errMissingUserID
	}

	c.adapter.SetToken(*token)
	user, err := c.adapter.GetUser(ctx, *userID)
	if err != nil {
		return err
	}
	return c.print(user)
}

func (c *cli) list(ctx context.Context, args []string) error {
	var page models.Page

	fs := newFlagSet("list")
	token := tokenFlag(fs)
	fs.Uint64Var(&page.Limit, "limit", 0, "")
	fs.Uint64Var(&page.Offset, "offset", 0, "")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c.adapter.SetToken(*token)
	users, err := c.adapter.ListUsers(ctx, page)
	if err != nil {
		return err
	}
	return c.print(users)
}

func (c *cli) update(ctx context.Context, args []string) error {
	fs := newFlagSet("update")
	token := tokenFlag(fs)
	userID := fs.Int64("id", 0, "")
	firstName := fs.String("first-name", "", "")
	fullName := fs.String("full-name", "", "")
	lastName := fs.String("last-name", "", "")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// only flags given on the command line become part of the update
	var update models.UserUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "first-name":
			update.FirstName = firstName
		case "full-name":
			update.FullName = fullName
		case "last-name":
			update.LastName = lastName
		}
	})

	c.adapter.SetToken(*token)
	if err := c.adapter.UpdateUser(ctx, *userID, update); err != nil {
		return err
	}
	return c.print(models.MessageResponse{Message: "User updated successfully"})
}

func (c *cli) delete(ctx context.Context, args []string) error {
	fs := newFlagSet("delete")
	token := tokenFlag(fs)
	userID := fs.Int64("id", 0, "")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *userID == 0 {
		return errMissingUserID
	}

	c.adapter.SetToken(*token)
	if err := c.adapter.DeleteUser(ctx, *userID); err != nil {
		return err
	}
	return c.print(models.MessageResponse{Message: "User deleted successfully"})
}

func (c *cli) print(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func tokenFlag(fs *flag.FlagSet) *string {
	return fs.String("token", os.Getenv(tokenEnv), "")
}
