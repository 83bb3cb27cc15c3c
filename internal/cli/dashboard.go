package cli

import (
	"context"
	"fmt"
)

// Dashboard prints the store overview: stock statistics, low stock
// alerts and the cash position.
func (a *App) Dashboard(ctx context.Context) error {
	board, err := a.dashboard.Overview(ctx)
	if err != nil {
		printlnFn("Tableau de bord indisponible.")
		return err
	}

	fmt.Fprintf(outWriter, "Produits:        %d\n", board.Stats.TotalProducts)
	fmt.Fprintf(outWriter, "Stock total:     %d\n", board.Stats.TotalStock)
	fmt.Fprintf(outWriter, "Valeur du stock: %s\n", board.Stats.TotalValue.StringFixed(2))
	fmt.Fprintf(outWriter, "Caisse:          %s\n", board.CashOnHand.StringFixed(2))
	fmt.Fprintf(outWriter, "Banque:          %s\n", board.BankBalance.StringFixed(2))

	if len(board.LowStock) > 0 {
		fmt.Fprintf(outWriter, "\n%d produit(s) sous le seuil d'alerte:\n", len(board.LowStock))
		for _, p := range board.LowStock {
			fmt.Fprintf(outWriter, "  %-12s %-30s stock %d (seuil %d)\n",
				p.Reference, p.Name, p.TotalStock, p.MinStockAlert)
		}
	}
	return nil
}
