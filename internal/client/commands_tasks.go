// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/go-task-keeper/internal/workers"
	"github.com/MKhiriev/go-task-keeper/models"
)

const timeLayout = "2006-01-02 15:04"

func (a *App) list(ctx context.Context, _ []string) error {
	tasks, err := a.adapter.ListTasks(ctx)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No tasks yet")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDONE\tTITLE")
	for _, task := range tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", task.TaskID, checkbox(task.Completed), task.Title)
	}
	return tw.Flush()
}

func (a *App) add(ctx context.Context, args []string) error {
	title := strings.Join(args, " ")
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: add TITLE", ErrUsage)
	}

	task, err := a.adapter.CreateTask(ctx, models.CreateTaskRequest{Title: title})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Created %s\n", task.TaskID)
	return nil
}

func (a *App) show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: show ID", ErrUsage)
	}

	task, err := a.adapter.GetTask(ctx, args[0])
	if err != nil {
		return err
	}

	a.printTask(task)
	return nil
}

func (a *App) rename(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: rename ID TITLE", ErrUsage)
	}

	title := strings.Join(args[1:], " ")
	task, err := a.adapter.UpdateTask(ctx, args[0], models.UpdateTaskRequest{Title: &title})
	if err != nil {
		return err
	}

	a.printTask(task)
	return nil
}

func (a *App) markDone(ctx context.Context, args []string) error {
	return a.setCompleted(ctx, args, true)
}

func (a *App) markUndone(ctx context.Context, args []string) error {
	return a.setCompleted(ctx, args, false)
}

func (a *App) setCompleted(ctx context.Context, ids []string, completed bool) error {
	verb := "done"
	if !completed {
		verb = "undone"
	}

	return a.batch(ctx, ids, verb, func(ctx context.Context, id string) error {
		_, err := a.adapter.UpdateTask(ctx, id, models.UpdateTaskRequest{Completed: &completed})
		return err
	})
}

func (a *App) remove(ctx context.Context, ids []string) error {
	return a.batch(ctx, ids, "deleted", a.adapter.DeleteTask)
}

// batch applies fn to every id concurrently and prints one line per id in
// argument order.
func (a *App) batch(ctx context.Context, ids []string, verb string, fn func(ctx context.Context, id string) error) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: at least one ID is required", ErrUsage)
	}

	pool := workers.New(a.batchLimit)
	for _, id := range ids {
		pool.Add(workers.WorkerFunc(func(ctx context.Context) error {
			return fn(ctx, id)
		}))
	}

	failed := false
	for i, err := range pool.Run(ctx) {
		if err != nil {
			failed = true
			fmt.Fprintf(a.out, "%s: %s\n", ids[i], ErrorMessage(err))
			continue
		}
		fmt.Fprintf(a.out, "%s: %s\n", ids[i], verb)
	}

	if failed {
		return ErrBatchFailed
	}
	return nil
}

func (a *App) printTask(task models.Task) {
	tw := tabwriter.NewWriter(a.out, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", task.TaskID)
	fmt.Fprintf(tw, "Title:\t%s\n", task.Title)
	fmt.Fprintf(tw, "Done:\t%s\n", checkbox(task.Completed))
	fmt.Fprintf(tw, "Created:\t%s\n", task.CreatedAt.Local().Format(timeLayout))
	fmt.Fprintf(tw, "Updated:\t%s\n", task.UpdatedAt.Local().Format(timeLayout))
	tw.Flush()
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
