package cli

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/yameogo/gestock/internal/models"
)

// Accounts handles the "accounts" collection commands, including the
// per-account ledger view.
func (a *App) Accounts(ctx context.Context, args []string) error {
	verb, rest := subcommand(args)
	switch verb {
	case "list":
		page, err := a.accounts.List(ctx, a.listParams(rest))
		if err != nil {
			return err
		}
		fmt.Fprintf(outWriter, "%d compte(s)\n", page.Count)
		for _, acc := range page.Results {
			fmt.Fprintf(outWriter, "%6d  %-30s %-6s %12s\n",
				acc.ID, acc.Name, acc.AccountType, acc.Balance.StringFixed(2))
		}
		return nil

	case "show":
		id, err := argID(rest)
		if err != nil {
			printlnFn("Usage: accounts show <id>")
			return err
		}
		acc, err := a.accounts.Get(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(outWriter, "%s (%s) — solde %s\n",
			acc.Name, acc.AccountType, acc.Balance.StringFixed(2))
		return nil

	case "add":
		form, err := a.promptAccountForm()
		if err != nil {
			return err
		}
		_, err = a.accounts.Create(ctx, form)
		return err

	case "del":
		id, err := argID(rest)
		if err != nil {
			printlnFn("Usage: accounts del <id>")
			return err
		}
		return a.accounts.Delete(ctx, id)

	case "history":
		id, err := argID(rest)
		if err != nil {
			printlnFn("Usage: accounts history <id>")
			return err
		}
		page, err := a.accounts.Transactions(ctx, id, a.listParams(nil))
		if err != nil {
			return err
		}
		for _, tx := range page.Results {
			fmt.Fprintf(outWriter, "%-14s %-10s %12s  %s\n",
				tx.TransactionNumber, tx.TransactionType, tx.Amount.StringFixed(2), tx.Description)
		}
		return nil

	default:
		printlnFn("Usage: accounts list|show|add|del|history")
		return errUsage
	}
}

func (a *App) promptAccountForm() (models.AccountForm, error) {
	var form models.AccountForm
	var err error
	if form.Name, err = GetSimpleText(a.reader, "Nom du compte", outWriter); err != nil {
		return form, err
	}
	kind, err := GetSimpleText(a.reader, "Type (bank/cash)", outWriter)
	if err != nil {
		return form, err
	}
	form.AccountType = models.AccountType(kind)
	balance, err := GetSimpleText(a.reader, "Solde d'ouverture", outWriter)
	if err != nil {
		return form, err
	}
	if balance != "" {
		if form.Balance, err = decimal.NewFromString(balance); err != nil {
			printlnFn("Montant invalide:", balance)
			return form, err
		}
	}
	form.IsActive = true
	return form, nil
}
