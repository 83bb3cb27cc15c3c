package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to
// operate. The real App type satisfies this interface; tests can
// provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Products(ctx context.Context, args []string) error
	Customers(ctx context.Context, args []string) error
	Suppliers(ctx context.Context, args []string) error
	Warehouses(ctx context.Context, args []string) error
	Employees(ctx context.Context, args []string) error
	Accounts(ctx context.Context, args []string) error
	Entries(ctx context.Context, args []string) error
	Exits(ctx context.Context, args []string) error
	Invoices(ctx context.Context, args []string) error
	Transactions(ctx context.Context, args []string) error
	Dashboard(ctx context.Context) error
}

// runREPL starts a read-eval-print loop for the gestock CLI.
//
// It reads a line from the provided scanner, parses the first token as
// the command, and dispatches to methods on 'a' with the remaining
// tokens as arguments. Unknown commands are reported back to the user.
// The loop exits on scanner EOF or when the user types "exit" or
// "quit".
//
// Collection commands share a subcommand grammar:
//
//	<collection> list [page]
//	<collection> show <id>
//	<collection> add
//	<collection> del <id>
//	<collection> search <text>
//
// Any errors returned by command handlers are ignored here; handlers
// report their own errors. This keeps the REPL loop resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("gestock %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Commandes: products, customers, suppliers, warehouses, employees, accounts,")
				printlnFn("          entries, exits, invoices, transactions, dashboard,")
				printlnFn("          whoami, logout, exit")
				printlnFn("Sous-commandes: list [page] | show <id> | add | del <id> | search <texte>")
			} else {
				printlnFn("Commandes: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "p", "products":
			_ = a.Products(ctx, args)

		case "customers":
			_ = a.Customers(ctx, args)

		case "suppliers":
			_ = a.Suppliers(ctx, args)

		case "warehouses":
			_ = a.Warehouses(ctx, args)

		case "employees":
			_ = a.Employees(ctx, args)

		case "accounts":
			_ = a.Accounts(ctx, args)

		case "entries":
			_ = a.Entries(ctx, args)

		case "exits":
			_ = a.Exits(ctx, args)

		case "invoices":
			_ = a.Invoices(ctx, args)

		case "transactions":
			_ = a.Transactions(ctx, args)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "exit", "quit":
			printlnFn("Au revoir!")
			return

		default:
			printlnFn("Commande inconnue:", cmd)
		}
	}
}
