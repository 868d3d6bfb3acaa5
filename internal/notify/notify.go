// Package notify decouples user-facing notifications from the upload core.
// Core packages return results; the view layer owns a Notifier and emits
// exactly one notification per terminal state.
package notify

import (
	"fmt"
	"io"
)

// Notifier renders user-visible notifications.
type Notifier interface {
	Success(msg string, args ...any)
	Error(msg string, args ...any)
	Info(msg string, args ...any)
}

// WriterNotifier prints notifications to an io.Writer, one line each.
type WriterNotifier struct {
	w io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Success(msg string, args ...any) {
	fmt.Fprintf(n.w, "✔ "+msg+"\n", args...)
}

func (n *WriterNotifier) Error(msg string, args ...any) {
	fmt.Fprintf(n.w, "✘ "+msg+"\n", args...)
}

func (n *WriterNotifier) Info(msg string, args ...any) {
	fmt.Fprintf(n.w, "• "+msg+"\n", args...)
}
