package cli

import (
	"context"
	"fmt"

	"github.com/yameogo/gestock/internal/models"
)

// Employees handles the staff roster commands.
func (a *App) Employees(ctx context.Context, args []string) error {
	verb, rest := subcommand(args)
	switch verb {
	case "list":
		page, err := a.employees.List(ctx, a.listParams(rest))
		if err != nil {
			return err
		}
		fmt.Fprintf(outWriter, "%d employé(s)\n", page.Count)
		for _, e := range page.Results {
			fmt.Fprintf(outWriter, "%6d  %-30s %-12s %s\n", e.ID, e.FullName, e.Position, e.Phone)
		}
		return nil

	case "show":
		id, err := argID(rest)
		if err != nil {
			printlnFn("Usage: employees show <id>")
			return err
		}
		e, err := a.employees.Get(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(outWriter, "%s — %s, embauché le %s, salaire %s\n",
			e.FullName, e.Position, e.HireDate, e.Salary)
		return nil

	case "add":
		form, err := a.promptEmployee()
		if err != nil {
			return err
		}
		_, err = a.employees.Create(ctx, form)
		return err

	case "del":
		id, err := argID(rest)
		if err != nil {
			printlnFn("Usage: employees del <id>")
			return err
		}
		return a.employees.Delete(ctx, id)

	default:
		printlnFn("Usage: employees list|show|add|del")
		return errUsage
	}
}

func (a *App) promptEmployee() (models.Employee, error) {
	var form models.Employee
	var err error
	if form.FullName, err = GetSimpleText(a.reader, "Nom complet", outWriter); err != nil {
		return form, err
	}
	position, err := GetSimpleText(a.reader, "Poste (vendeur/caissier/magasinier/manager/autre)", outWriter)
	if err != nil {
		return form, err
	}
	form.Position = models.EmployeePosition(position)
	if form.Phone, err = GetSimpleText(a.reader, "Téléphone (optionnel)", outWriter); err != nil {
		return form, err
	}
	if form.Salary, err = GetSimpleText(a.reader, "Salaire", outWriter); err != nil {
		return form, err
	}
	if form.HireDate, err = GetSimpleText(a.reader, "Date d'embauche (AAAA-MM-JJ)", outWriter); err != nil {
		return form, err
	}
	form.IsActive = true
	return form, nil
}
