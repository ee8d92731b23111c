package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	user, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Welcome back, %s!", user.Name))
	return a.tasks.Load(ctx, user.ID)
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Logged out")

	// Back to the anonymous partition until somebody logs in again.
	return a.tasks.Load(ctx, "")
}
