package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/yameogo/gestock/internal/models"
)

// Customers handles the "customers" collection commands.
func (a *App) Customers(ctx context.Context, args []string) error {
	verb, rest := subcommand(args)
	switch verb {
	case "list":
		page, err := a.customers.List(ctx, a.listParams(rest))
		if err != nil {
			return err
		}
		fmt.Fprintf(outWriter, "%d client(s)\n", page.Count)
		for _, c := range page.Results {
			printParty(c.ID, c.Name, c.Phone, c.Email)
		}
		return nil

	case "show":
		id, err := argID(rest)
		if err != nil {
			printlnFn("Usage: customers show <id>")
			return err
		}
		c, err := a.customers.Get(ctx, id)
		if err != nil {
			return err
		}
		printParty(c.ID, c.Name, c.Phone, c.Email)
		return nil

	case "add":
		form, err := a.promptPartyForm()
		if err != nil {
			return err
		}
		_, err = a.customers.Create(ctx, form)
		return err

	case "del":
		id, err := argID(rest)
		if err != nil {
			printlnFn("Usage: customers del <id>")
			return err
		}
		return a.customers.Delete(ctx, id)

	case "search":
		if len(rest) == 0 {
			printlnFn("Usage: customers search <texte>")
			return errUsage
		}
		found, err := a.customers.Search(ctx, strings.Join(rest, " "))
		if err != nil {
			return err
		}
		for _, c := range found {
			printParty(c.ID, c.Name, c.Phone, c.Email)
		}
		return nil

	default:
		printlnFn("Usage: customers list|show|add|del|search")
		return errUsage
	}
}

// Suppliers handles the "suppliers" collection commands.
func (a *App) Suppliers(ctx context.Context, args []string) error {
	verb, rest := subcommand(args)
	switch verb {
	case "list":
		page, err := a.suppliers.List(ctx, a.listParams(rest))
		if err != nil {
			return err
		}
		fmt.Fprintf(outWriter, "%d fournisseur(s)\n", page.Count)
		for _, s := range page.Results {
			printParty(s.ID, s.Name, s.Phone, s.Email)
		}
		return nil

	case "show":
		id, err := argID(rest)
		if err != nil {
			printlnFn("Usage: suppliers show <id>")
			return err
		}
		s, err := a.suppliers.Get(ctx, id)
		if err != nil {
			return err
		}
		printParty(s.ID, s.Name, s.Phone, s.Email)
		return nil

	case "add":
		form, err := a.promptPartyForm()
		if err != nil {
			return err
		}
		_, err = a.suppliers.Create(ctx, form)
		return err

	case "del":
		id, err := argID(rest)
		if err != nil {
			printlnFn("Usage: suppliers del <id>")
			return err
		}
		return a.suppliers.Delete(ctx, id)

	case "search":
		if len(rest) == 0 {
			printlnFn("Usage: suppliers search <texte>")
			return errUsage
		}
		found, err := a.suppliers.Search(ctx, strings.Join(rest, " "))
		if err != nil {
			return err
		}
		for _, s := range found {
			printParty(s.ID, s.Name, s.Phone, s.Email)
		}
		return nil

	default:
		printlnFn("Usage: suppliers list|show|add|del|search")
		return errUsage
	}
}

func printParty(id int64, name, phone, email string) {
	fmt.Fprintf(outWriter, "%6d  %-30s %-15s %s\n", id, name, phone, email)
}

func (a *App) promptPartyForm() (models.PartyForm, error) {
	var form models.PartyForm
	var err error
	if form.Name, err = GetSimpleText(a.reader, "Nom", outWriter); err != nil {
		return form, err
	}
	if form.Phone, err = GetSimpleText(a.reader, "Téléphone (optionnel)", outWriter); err != nil {
		return form, err
	}
	if form.Email, err = GetSimpleText(a.reader, "Email (optionnel)", outWriter); err != nil {
		return form, err
	}
	if form.Address, err = GetSimpleText(a.reader, "Adresse (optionnel)", outWriter); err != nil {
		return form, err
	}
	return form, nil
}
