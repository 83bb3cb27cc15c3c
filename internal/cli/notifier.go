package cli

import (
	"fmt"
	"io"
	"sort"
)

// consoleNotifier prints mutation outcomes to the terminal. It is the
// Notifier implementation the App hands to every service.
type consoleNotifier struct {
	w io.Writer
}

func (n consoleNotifier) Success(msg string) {
	fmt.Fprintf(n.w, "✔ %s\n", msg)
}

func (n consoleNotifier) Error(msg string) {
	fmt.Fprintf(n.w, "✘ %s\n", msg)
}

func (n consoleNotifier) FieldErrors(fields map[string][]string) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, msg := range fields[name] {
			fmt.Fprintf(n.w, "✘ %s: %s\n", name, msg)
		}
	}
}
