// Package cli implements the authctl command-line tool: register, login,
// profile, and logout against a running authkeeper server.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/authkeeper/internal/client"
)

type App struct {
	client *client.Client
	in     *bufio.Reader
	out    io.Writer
}

func NewApp(c *client.Client, in io.Reader, out io.Writer) *App {
	return &App{client: c, in: bufio.NewReader(in), out: out}
}

// Run dispatches one subcommand. The session token for profile/logout is
// taken from args when given, otherwise prompted for.
func (a *App) Run(ctx context.Context, args []string) error {

	if len(args) == 0 {
		return fmt.Errorf("usage: authctl [-a addr] register|login|profile|logout")
	}

	switch args[0] {
	case "register":
		return a.register(ctx)
	case "login":
		return a.login(ctx)
	case "profile":
		return a.profile(ctx, args[1:])
	case "logout":
		return a.logout(ctx, args[1:])
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func (a *App) register(ctx context.Context) error {
	email, err := GetSimpleText(a.in, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.client.Register(ctx, email, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "user created")
	return nil
}

func (a *App) login(ctx context.Context) error {
	email, err := GetSimpleText(a.in, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "logged in, session id: %s\n", token)
	return nil
}

func (a *App) profile(ctx context.Context, args []string) error {
	token, err := a.sessionToken(args)
	if err != nil {
		return err
	}

	email, err := a.client.Profile(ctx, token)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "logged in as %s\n", email)
	return nil
}

func (a *App) logout(ctx context.Context, args []string) error {
	token, err := a.sessionToken(args)
	if err != nil {
		return err
	}

	if err := a.client.Logout(ctx, token); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "logged out")
	return nil
}

func (a *App) sessionToken(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return GetSimpleText(a.in, "Enter session id", a.out)
}
