package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

func (a *App) println(args ...any) {
	printlnFn(args...)
}

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	inProfile() bool

	// users screen
	List(ctx context.Context)
	Next(ctx context.Context)
	Prev(ctx context.Context)
	Add(ctx context.Context)
	Edit(ctx context.Context, arg string)
	Delete(ctx context.Context, arg string)
	Open(ctx context.Context, arg string)

	// profile screen
	Show(ctx context.Context)
	EditProfile(ctx context.Context)
	Pick(ctx context.Context, path string)
	Upload(ctx context.Context)
	Drop(ctx context.Context)
	Back(ctx context.Context)
}

// runREPL starts a simple read-eval-print loop for the userdeck CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current screen (from statusFn) and accepts commands:
//
//	Users screen:
//	  - help            - show available commands
//	  - list | l        - print the current page
//	  - next | prev     - page forward / back (back clamps at page 1)
//	  - add             - create a user (interactive prompts)
//	  - edit <row>      - edit a user on the current page
//	  - del <row>       - delete a user (asks for confirmation)
//	  - open <row|id>   - open a user's profile
//	  - exit | quit     - leave the program
//
//	Profile screen:
//	  - help            - show available commands
//	  - show            - print the profile
//	  - edit            - edit profile fields (interactive prompts)
//	  - pick <path>     - select an image file and build its preview
//	  - upload          - commit the previewed image
//	  - drop            - discard the selection
//	  - back            - return to the users screen
//	  - exit | quit     - leave the program
//
// Command handlers report their own errors through the store state they
// print afterwards. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("userdeck %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		switch cmd {
		case "help":
			if a.inProfile() {
				printlnFn("Available commands: show, edit, pick <path>, upload, drop, back, exit")
			} else {
				printlnFn("Available commands: (l)ist, next, prev, add, edit <row>, del <row>, open <row|id>, exit")
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if a.inProfile() {
				dispatchProfile(ctx, a, cmd, arg)
			} else {
				dispatchUsers(ctx, a, cmd, arg)
			}
		}
	}
}

func dispatchUsers(ctx context.Context, a execIface, cmd, arg string) {
	switch cmd {
	case "l", "list":
		a.List(ctx)
	case "next":
		a.Next(ctx)
	case "prev":
		a.Prev(ctx)
	case "add":
		a.Add(ctx)
	case "edit":
		a.Edit(ctx, arg)
	case "del", "delete":
		a.Delete(ctx, arg)
	case "open":
		a.Open(ctx, arg)
	default:
		printlnFn("Unknown command:", cmd)
	}
}

func dispatchProfile(ctx context.Context, a execIface, cmd, arg string) {
	switch cmd {
	case "show":
		a.Show(ctx)
	case "edit":
		a.EditProfile(ctx)
	case "pick":
		a.Pick(ctx, arg)
	case "upload":
		a.Upload(ctx)
	case "drop":
		a.Drop(ctx)
	case "back":
		a.Back(ctx)
	default:
		printlnFn("Unknown command:", cmd)
	}
}
