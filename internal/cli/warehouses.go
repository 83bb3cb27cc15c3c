package cli

import (
	"context"
	"fmt"

	"github.com/yameogo/gestock/internal/models"
)

// Warehouses handles the "warehouses" collection commands.
func (a *App) Warehouses(ctx context.Context, args []string) error {
	verb, rest := subcommand(args)
	switch verb {
	case "list":
		page, err := a.warehouses.List(ctx, a.listParams(rest))
		if err != nil {
			return err
		}
		fmt.Fprintf(outWriter, "%d dépôt(s)\n", page.Count)
		for _, w := range page.Results {
			active := "actif"
			if !w.IsActive {
				active = "inactif"
			}
			fmt.Fprintf(outWriter, "%6d  %-30s %-40s %s\n", w.ID, w.Name, w.Address, active)
		}
		return nil

	case "show":
		id, err := argID(rest)
		if err != nil {
			printlnFn("Usage: warehouses show <id>")
			return err
		}
		w, err := a.warehouses.Get(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(outWriter, "%s — %s\n", w.Name, w.Address)
		return nil

	case "add":
		var form models.WarehouseForm
		var err error
		if form.Name, err = GetSimpleText(a.reader, "Nom du dépôt", outWriter); err != nil {
			return err
		}
		if form.Address, err = GetSimpleText(a.reader, "Adresse (optionnel)", outWriter); err != nil {
			return err
		}
		form.IsActive = true
		_, err = a.warehouses.Create(ctx, form)
		return err

	case "del":
		id, err := argID(rest)
		if err != nil {
			printlnFn("Usage: warehouses del <id>")
			return err
		}
		return a.warehouses.Delete(ctx, id)

	default:
		printlnFn("Usage: warehouses list|show|add|del")
		return errUsage
	}
}
