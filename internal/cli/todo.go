package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/origami-app/origami/internal/common"
)

// AddTodo prompts for the fields of a new task and stores it.
func (a *App) AddTodo(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Task title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		return err
	}

	priority := 0
	if raw, err := getSimpleText(a.reader, "Priority 1-3 (empty for low)", os.Stdout); err == nil && raw != "" {
		priority, _ = strconv.Atoi(raw)
	}

	var dueDate *time.Time
	if raw, err := getSimpleText(a.reader, "Due date YYYY-MM-DD (optional)", os.Stdout); err == nil && raw != "" {
		if day, err := parseDay(raw); err == nil {
			dueDate = &day
		}
	}

	if _, err := a.todos.Add(ctx, title, description, priority, dueDate); err != nil {
		if errors.Is(err, common.ErrValidation) {
			Warning("%v", err)
			return nil
		}
		Error("could not add task: %v", err)
		return err
	}
	Success("Task added")
	return nil
}

// ListTodos prints every task, newest first.
func (a *App) ListTodos(ctx context.Context) error {
	all, err := a.todos.List(ctx)
	if err != nil {
		Error("listing failed: %v", err)
		return err
	}
	if len(all) == 0 {
		printlnFn("No tasks yet.")
		return nil
	}

	for _, t := range all {
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		line := fmt.Sprintf("%d %s %s (p%d)", t.ID, mark, t.Title, t.Priority)
		if t.DueDate != nil {
			line += " due " + t.DueDate.Format("2006-01-02")
		}
		printlnFn(line)
	}
	return nil
}

// ToggleTodo flips the completion state of a task by id.
func (a *App) ToggleTodo(ctx context.Context) error {
	id, err := a.promptID("Task id")
	if err != nil {
		return nil
	}
	if err := a.todos.Toggle(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("No task with that id.")
			return nil
		}
		Error("toggle failed: %v", err)
		return err
	}
	Success("Task updated")
	return nil
}

// RenameTodo changes the title of a task.
func (a *App) RenameTodo(ctx context.Context) error {
	id, err := a.promptID("Task id")
	if err != nil {
		return nil
	}
	title, err := getSimpleText(a.reader, "New title", os.Stdout)
	if err != nil {
		return err
	}
	switch err := a.todos.Rename(ctx, id, title); {
	case errors.Is(err, common.ErrValidation):
		Warning("%v", err)
	case errors.Is(err, common.ErrNotFound):
		printlnFn("No task with that id.")
	case err != nil:
		Error("rename failed: %v", err)
		return err
	default:
		Success("Task renamed")
	}
	return nil
}

// DeleteTodo removes a task after confirmation.
func (a *App) DeleteTodo(ctx context.Context) error {
	id, err := a.promptID("Task id")
	if err != nil {
		return nil
	}
	if !Confirm(a.reader, "Delete this task?", os.Stdout) {
		return nil
	}
	if err := a.todos.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("No task with that id.")
			return nil
		}
		Error("delete failed: %v", err)
		return err
	}
	Success("Task deleted")
	return nil
}

func (a *App) promptID(prompt string) (int64, error) {
	raw, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		Warning("Ids are numeric.")
		return 0, err
	}
	return id, nil
}
