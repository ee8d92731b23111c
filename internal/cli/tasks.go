package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) List(_ context.Context) error {
	tasks := a.tasks.Tasks()
	if len(tasks) == 0 {
		printlnFn("No tasks")
		return nil
	}
	for _, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		printlnFn(fmt.Sprintf("[%s] %s  %s", mark, t.ID, t.Text))
	}
	return nil
}

// Add creates a task and then bumps the creation counter. The two writes hit
// storage independently, task first.
func (a *App) Add(ctx context.Context) error {
	text, err := GetSimpleText(a.reader, "Enter task text", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}

	if err := a.tasks.Add(ctx, text); err != nil {
		printlnFn(err.Error())
		return err
	}

	if u := a.auth.CurrentUser(); u != nil {
		if err := a.stats.RecordTaskCreated(ctx, u.ID); err != nil {
			printlnFn(err.Error())
		}
	}
	return nil
}

func (a *App) Toggle(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter task id to toggle", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if err := a.tasks.Toggle(ctx, id); err != nil {
		printlnFn(err.Error())
		return err
	}
	return nil
}

func (a *App) Remove(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter task id to delete", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if err := a.tasks.Delete(ctx, id); err != nil {
		printlnFn(err.Error())
		return err
	}
	return nil
}

func (a *App) ClearCompleted(ctx context.Context) error {
	if err := a.tasks.ClearCompleted(ctx); err != nil {
		printlnFn(err.Error())
		return err
	}
	return nil
}
