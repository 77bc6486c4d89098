package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Journal(ctx context.Context) error

	AddTodo(ctx context.Context) error
	ListTodos(ctx context.Context) error
	ToggleTodo(ctx context.Context) error
	RenameTodo(ctx context.Context) error
	DeleteTodo(ctx context.Context) error

	AddEvent(ctx context.Context) error
	ListEvents(ctx context.Context) error
	Agenda(ctx context.Context) error
	DeleteEvent(ctx context.Context) error

	Pomodoro(ctx context.Context) error
	ShowProfile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Export(ctx context.Context) error
	Backup(ctx context.Context) error
}

// runREPL starts the read-eval-print loop of the Origami shell.
//
// It reads a line from the provided scanner, parses the first token as
// the command, and dispatches to methods on 'a'. Unknown commands are
// reported back to the user. The loop exits on scanner EOF or when the
// user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers
// report their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printlnFn("origami> ")
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Tasks:    add, (l)ist, toggle, rename, deltask")
			printlnFn("Journal:  journal")
			printlnFn("Calendar: event, events, agenda, delevent")
			printlnFn("Other:    pomodoro, profile, editprofile, export, backup, exit")

		case "journal":
			_ = a.Journal(ctx)

		case "add":
			_ = a.AddTodo(ctx)

		case "l", "list":
			_ = a.ListTodos(ctx)

		case "toggle":
			_ = a.ToggleTodo(ctx)

		case "rename":
			_ = a.RenameTodo(ctx)

		case "deltask":
			_ = a.DeleteTodo(ctx)

		case "event":
			_ = a.AddEvent(ctx)

		case "events":
			_ = a.ListEvents(ctx)

		case "agenda":
			_ = a.Agenda(ctx)

		case "delevent":
			_ = a.DeleteEvent(ctx)

		case "pomodoro":
			_ = a.Pomodoro(ctx)

		case "profile":
			_ = a.ShowProfile(ctx)

		case "editprofile":
			_ = a.EditProfile(ctx)

		case "export":
			_ = a.Export(ctx)

		case "backup":
			_ = a.Backup(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
