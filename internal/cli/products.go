package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/yameogo/gestock/internal/models"
	"github.com/yameogo/gestock/internal/services"
)

// Products handles the "products" collection commands.
func (a *App) Products(ctx context.Context, args []string) error {
	verb, rest := subcommand(args)
	switch verb {
	case "list":
		page, err := a.products.List(ctx, a.listParams(rest))
		if err != nil {
			return err
		}
		fmt.Fprintf(outWriter, "%d produit(s)\n", page.Count)
		for _, p := range page.Results {
			a.printProduct(p)
		}
		return nil

	case "show":
		id, err := argID(rest)
		if err != nil {
			printlnFn("Usage: products show <id>")
			return err
		}
		p, err := a.products.Get(ctx, id)
		if err != nil {
			return err
		}
		a.printProduct(p)
		return nil

	case "add":
		form, err := a.promptProductForm()
		if err != nil {
			return err
		}
		_, err = a.products.Create(ctx, form)
		return err

	case "del":
		id, err := argID(rest)
		if err != nil {
			printlnFn("Usage: products del <id>")
			return err
		}
		return a.products.Delete(ctx, id)

	case "search":
		if len(rest) == 0 {
			printlnFn("Usage: products search <texte>")
			return errUsage
		}
		found, err := a.products.Search(ctx, strings.Join(rest, " "))
		if err != nil {
			return err
		}
		for _, p := range found {
			a.printProduct(p)
		}
		return nil

	case "low":
		low, err := a.products.LowStock(ctx)
		if err != nil {
			return err
		}
		for _, p := range low {
			fmt.Fprintf(outWriter, "%6d  %-12s %-30s stock %d (seuil %d)\n",
				p.ID, p.Reference, p.Name, p.TotalStock, p.MinStockAlert)
		}
		return nil

	case "stock":
		var filter services.StockFilter
		if len(rest) > 0 {
			filter.Search = strings.Join(rest, " ")
		}
		stocks, err := a.products.Stock(ctx, filter)
		if err != nil {
			return err
		}
		for _, s := range stocks {
			fmt.Fprintf(outWriter, "%-30s %-20s %d %s\n",
				s.Product.Name, s.Warehouse.Name, s.Quantity, s.Product.Unit)
		}
		return nil

	default:
		printlnFn("Usage: products list|show|add|del|search|low|stock")
		return errUsage
	}
}

func (a *App) printProduct(p models.Product) {
	fmt.Fprintf(outWriter, "%6d  %-12s %-30s %-8s stock %d\n",
		p.ID, p.Reference, p.Name, p.Unit, p.TotalStock)
}

func (a *App) promptProductForm() (models.ProductForm, error) {
	var form models.ProductForm
	var err error
	if form.Reference, err = GetSimpleText(a.reader, "Référence", outWriter); err != nil {
		return form, err
	}
	if form.Name, err = GetSimpleText(a.reader, "Nom", outWriter); err != nil {
		return form, err
	}
	if form.Unit, err = GetSimpleText(a.reader, "Unité (piece, kg, litre...)", outWriter); err != nil {
		return form, err
	}
	if form.Description, err = GetSimpleText(a.reader, "Description (optionnel)", outWriter); err != nil {
		return form, err
	}
	if form.MinStockAlert, err = a.promptInt64("Seuil d'alerte stock"); err != nil {
		return form, err
	}
	return form, nil
}
