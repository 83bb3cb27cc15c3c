package cli

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/yameogo/gestock/internal/models"
	"github.com/yameogo/gestock/internal/services"
)

// Entries handles the "entries" (goods received) commands.
func (a *App) Entries(ctx context.Context, args []string) error {
	verb, rest := subcommand(args)
	switch verb {
	case "list":
		page, err := a.stock.ListEntries(ctx, a.listParams(rest), services.MovementFilter{})
		if err != nil {
			return err
		}
		fmt.Fprintf(outWriter, "%d entrée(s) de stock\n", page.Count)
		for _, e := range page.Results {
			fmt.Fprintf(outWriter, "%6d  %-14s %-25s %-20s %12s\n",
				e.ID, e.EntryNumber, e.SupplierName, e.WarehouseName, e.TotalAmount.StringFixed(2))
		}
		return nil

	case "show":
		id, err := argID(rest)
		if err != nil {
			printlnFn("Usage: entries show <id>")
			return err
		}
		e, err := a.stock.GetEntry(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(outWriter, "%s — %s → %s, total %s\n",
			e.EntryNumber, e.SupplierName, e.WarehouseName, e.TotalAmount.StringFixed(2))
		for _, item := range e.Items {
			fmt.Fprintf(outWriter, "  %-30s %4d × %10s = %12s\n",
				item.Product.Name, item.Quantity, item.PurchasePrice.StringFixed(2), item.TotalPrice.StringFixed(2))
		}
		return nil

	case "add":
		form, err := a.promptEntryForm()
		if err != nil {
			return err
		}
		_, err = a.stock.CreateEntry(ctx, form)
		return err

	case "del":
		id, err := argID(rest)
		if err != nil {
			printlnFn("Usage: entries del <id>")
			return err
		}
		return a.stock.DeleteEntry(ctx, id)

	default:
		printlnFn("Usage: entries list|show|add|del")
		return errUsage
	}
}

// Exits handles the "exits" (goods issued) commands.
func (a *App) Exits(ctx context.Context, args []string) error {
	verb, rest := subcommand(args)
	switch verb {
	case "list":
		page, err := a.stock.ListExits(ctx, a.listParams(rest), services.MovementFilter{})
		if err != nil {
			return err
		}
		fmt.Fprintf(outWriter, "%d sortie(s) de stock\n", page.Count)
		for _, e := range page.Results {
			fmt.Fprintf(outWriter, "%6d  %-14s %-25s %-20s %12s\n",
				e.ID, e.ExitNumber, e.CustomerName, e.WarehouseName, e.TotalAmount.StringFixed(2))
		}
		return nil

	case "show":
		id, err := argID(rest)
		if err != nil {
			printlnFn("Usage: exits show <id>")
			return err
		}
		e, err := a.stock.GetExit(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(outWriter, "%s — %s, dépôt %s, total %s\n",
			e.ExitNumber, e.CustomerName, e.WarehouseName, e.TotalAmount.StringFixed(2))
		for _, item := range e.Items {
			fmt.Fprintf(outWriter, "  %-30s %4d × %10s = %12s\n",
				item.Product.Name, item.Quantity, item.SalePrice.StringFixed(2), item.TotalPrice.StringFixed(2))
		}
		return nil

	case "add":
		form, err := a.promptExitForm()
		if err != nil {
			return err
		}
		_, err = a.stock.CreateExit(ctx, form)
		return err

	case "del":
		id, err := argID(rest)
		if err != nil {
			printlnFn("Usage: exits del <id>")
			return err
		}
		return a.stock.DeleteExit(ctx, id)

	default:
		printlnFn("Usage: exits list|show|add|del")
		return errUsage
	}
}

func (a *App) promptEntryForm() (models.StockEntryForm, error) {
	var form models.StockEntryForm
	var err error
	if form.Supplier, err = a.promptInt64("ID fournisseur"); err != nil {
		return form, err
	}
	if form.Warehouse, err = a.promptWarehouse(); err != nil {
		return form, err
	}
	printlnFn("Lignes (ID produit vide pour terminer)")
	for {
		product, qty, price, done, err := a.promptLine()
		if err != nil {
			return form, err
		}
		if done {
			break
		}
		form.Items = append(form.Items, models.StockEntryItemForm{
			Product: product, Quantity: qty, PurchasePrice: price,
		})
	}
	form.Notes, err = GetSimpleText(a.reader, "Notes (optionnel)", outWriter)
	return form, err
}

func (a *App) promptExitForm() (models.StockExitForm, error) {
	var form models.StockExitForm
	var err error
	if form.Customer, err = a.promptInt64("ID client (vide pour un client de passage)"); err != nil {
		return form, err
	}
	if form.Customer == 0 {
		if form.CustomerName, err = GetSimpleText(a.reader, "Nom du client", outWriter); err != nil {
			return form, err
		}
	}
	if form.Warehouse, err = a.promptWarehouse(); err != nil {
		return form, err
	}
	printlnFn("Lignes (ID produit vide pour terminer)")
	for {
		product, qty, price, done, err := a.promptLine()
		if err != nil {
			return form, err
		}
		if done {
			break
		}
		form.Items = append(form.Items, models.StockExitItemForm{
			Product: product, Quantity: qty, SalePrice: price,
		})
	}
	form.Notes, err = GetSimpleText(a.reader, "Notes (optionnel)", outWriter)
	return form, err
}

// promptWarehouse lists the active warehouses, then reads the chosen
// ID. The picker keeps working when the listing fails; the backend
// validates the ID anyway.
func (a *App) promptWarehouse() (int64, error) {
	if all, err := a.warehouses.All(context.Background()); err == nil {
		for _, w := range all {
			if w.IsActive {
				fmt.Fprintf(outWriter, "  %d: %s\n", w.ID, w.Name)
			}
		}
	}
	return a.promptInt64("ID dépôt")
}

// promptLine reads one movement line. An empty product ID ends the
// sequence.
func (a *App) promptLine() (product, qty int64, price decimal.Decimal, done bool, err error) {
	product, err = a.promptInt64("ID produit")
	if err != nil || product == 0 {
		return 0, 0, decimal.Zero, true, err
	}
	if qty, err = a.promptInt64("Quantité"); err != nil {
		return 0, 0, decimal.Zero, false, err
	}
	raw, err := GetSimpleText(a.reader, "Prix unitaire", outWriter)
	if err != nil {
		return 0, 0, decimal.Zero, false, err
	}
	if price, err = decimal.NewFromString(raw); err != nil {
		printlnFn("Montant invalide:", raw)
		return 0, 0, decimal.Zero, false, err
	}
	return product, qty, price, false, nil
}
