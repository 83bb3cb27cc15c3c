package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/yameogo/gestock/internal/models"
)

// Invoices handles the "invoices" collection commands, including the
// printable receipt view and the PDF download.
func (a *App) Invoices(ctx context.Context, args []string) error {
	verb, rest := subcommand(args)
	switch verb {
	case "list":
		page, err := a.invoices.List(ctx, a.listParams(rest))
		if err != nil {
			return err
		}
		fmt.Fprintf(outWriter, "%d facture(s)\n", page.Count)
		for _, inv := range page.Results {
			fmt.Fprintf(outWriter, "%6d  %-14s %-25s %12s %s\n",
				inv.ID, inv.InvoiceNumber, inv.CustomerName, inv.TotalAmount.StringFixed(2), inv.Status)
		}
		return nil

	case "show":
		id, err := argID(rest)
		if err != nil {
			printlnFn("Usage: invoices show <id>")
			return err
		}
		data, err := a.invoices.PrintData(ctx, id)
		if err != nil {
			return err
		}
		printReceipt(data)
		return nil

	case "add":
		var form models.InvoiceForm
		exit, err := a.promptInt64("ID sortie de stock")
		if err != nil {
			return err
		}
		if exit == 0 {
			printlnFn("Une facture se crée à partir d'une sortie de stock.")
			return errUsage
		}
		form.StockExit = exit
		if form.Notes, err = GetSimpleText(a.reader, "Notes (optionnel)", outWriter); err != nil {
			return err
		}
		_, err = a.invoices.Create(ctx, form)
		return err

	case "del":
		id, err := argID(rest)
		if err != nil {
			printlnFn("Usage: invoices del <id>")
			return err
		}
		return a.invoices.Delete(ctx, id)

	case "pdf":
		id, err := argID(rest)
		if err != nil {
			printlnFn("Usage: invoices pdf <id>")
			return err
		}
		data, err := a.invoices.DownloadPDF(ctx, id)
		if err != nil {
			return err
		}
		name := fmt.Sprintf("facture-%d.pdf", id)
		if err := os.WriteFile(name, data, 0o644); err != nil {
			return err
		}
		printlnFn("Enregistré:", name)
		return nil

	default:
		printlnFn("Usage: invoices list|show|add|del|pdf")
		return errUsage
	}
}

func printReceipt(data models.InvoicePrintData) {
	fmt.Fprintf(outWriter, "%s\n%s\n\n", data.Store.Name, data.Store.Description)
	fmt.Fprintf(outWriter, "Facture %s — %s %s\n", data.Invoice.InvoiceNumber, data.Invoice.Date, data.Invoice.Time)
	fmt.Fprintf(outWriter, "Client: %s\n\n", data.Customer.Name)
	for _, item := range data.Items {
		fmt.Fprintf(outWriter, "  %-30s %4d × %10s = %12s\n",
			item.ProductName, item.Quantity, item.UnitPrice, item.TotalPrice)
	}
	fmt.Fprintf(outWriter, "\nSous-total: %s\nTVA:        %s\nTotal:      %s\n",
		data.FormattedTotals.Subtotal, data.FormattedTotals.TaxAmount, data.FormattedTotals.TotalAmount)
}
