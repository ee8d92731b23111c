package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	name, err := GetSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	user, err := a.auth.Register(ctx, email, string(password), name)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", user.Name))
	return a.tasks.Load(ctx, user.ID)
}
