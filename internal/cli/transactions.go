package cli

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/yameogo/gestock/internal/models"
)

// Transactions handles the ledger commands.
func (a *App) Transactions(ctx context.Context, args []string) error {
	verb, rest := subcommand(args)
	switch verb {
	case "list":
		page, err := a.transactions.List(ctx, a.listParams(rest), models.TransactionFilter{})
		if err != nil {
			return err
		}
		fmt.Fprintf(outWriter, "%d transaction(s)\n", page.Count)
		for _, tx := range page.Results {
			from, to := "-", "-"
			if tx.FromAccount != nil {
				from = tx.FromAccount.Name
			}
			if tx.ToAccount != nil {
				to = tx.ToAccount.Name
			}
			fmt.Fprintf(outWriter, "%-14s %-10s %12s  %s → %s\n",
				tx.TransactionNumber, tx.TransactionType, tx.Amount.StringFixed(2), from, to)
		}
		return nil

	case "add":
		form, err := a.promptTransactionForm()
		if err != nil {
			return err
		}
		_, err = a.transactions.Create(ctx, form)
		return err

	case "del":
		id, err := argID(rest)
		if err != nil {
			printlnFn("Usage: transactions del <id>")
			return err
		}
		return a.transactions.Delete(ctx, id)

	default:
		printlnFn("Usage: transactions list|add|del")
		return errUsage
	}
}

func (a *App) promptTransactionForm() (models.TransactionForm, error) {
	var form models.TransactionForm
	kind, err := GetSimpleText(a.reader, "Type (transfer/adjustment)", outWriter)
	if err != nil {
		return form, err
	}
	form.TransactionType = models.TransactionType(kind)
	raw, err := GetSimpleText(a.reader, "Montant", outWriter)
	if err != nil {
		return form, err
	}
	if form.Amount, err = decimal.NewFromString(raw); err != nil {
		printlnFn("Montant invalide:", raw)
		return form, err
	}
	if form.FromAccount, err = a.promptInt64("ID compte débité (optionnel)"); err != nil {
		return form, err
	}
	if form.ToAccount, err = a.promptInt64("ID compte crédité (optionnel)"); err != nil {
		return form, err
	}
	form.Description, err = GetSimpleText(a.reader, "Description (optionnel)", outWriter)
	return form, err
}
