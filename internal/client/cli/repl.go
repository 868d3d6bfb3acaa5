package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Upload(ctx context.Context, args []string) error
	Probe(ctx context.Context) error
	Creds(ctx context.Context) error
	SetCreds(ctx context.Context, args []string) error
	ResetCreds(ctx context.Context, args []string) error
	Mode(ctx context.Context, args []string) error
	History(ctx context.Context) error
	Points(ctx context.Context) error
	WhoAmI() error
}

// runREPL starts a simple read-eval-print loop for the uploader CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//   - help                        - show available commands
//   - upload <file> [aws|oort]    - validate and upload a file
//   - test                        - probe OORT connectivity
//   - creds [aws|oort]            - show active credentials
//   - setcreds <aws|oort>         - save a credential override
//   - resetcreds <aws|oort>       - drop the override, back to defaults
//   - mode [aws|oort]             - show or toggle real/simulated mode
//   - history                     - list your uploads, newest first
//   - points                      - show cumulative points and trust level
//   - whoami                      - show the tracked user id
//   - exit | quit                 - leave the program
//
// Any errors returned by command handlers are ignored here; handlers notify
// the user themselves. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("dgn> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: upload, test, creds, setcreds, resetcreds, mode, history, points, whoami, exit")

		case "upload":
			if len(args) == 0 {
				printlnFn("Usage: upload <file> [aws|oort]")
				continue
			}
			_ = a.Upload(ctx, args)

		case "test":
			_ = a.Probe(ctx)

		case "creds":
			_ = a.Creds(ctx)

		case "setcreds":
			if len(args) == 0 {
				printlnFn("Usage: setcreds <aws|oort>")
				continue
			}
			_ = a.SetCreds(ctx, args)

		case "resetcreds":
			if len(args) == 0 {
				printlnFn("Usage: resetcreds <aws|oort>")
				continue
			}
			_ = a.ResetCreds(ctx, args)

		case "mode":
			_ = a.Mode(ctx, args)

		case "history":
			_ = a.History(ctx)

		case "points":
			_ = a.Points(ctx)

		case "whoami":
			_ = a.WhoAmI()

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
