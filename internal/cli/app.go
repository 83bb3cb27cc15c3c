package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/yameogo/gestock/internal/api"
	"github.com/yameogo/gestock/internal/config"
	"github.com/yameogo/gestock/internal/logging"
	"github.com/yameogo/gestock/internal/models"
	"github.com/yameogo/gestock/internal/services"
)

// App bundles the configuration and the entity services behind the
// interactive shell.
type App struct {
	config *config.Config
	log    logging.Logger
	reader *bufio.Reader

	auth         *services.AuthService
	products     *services.ProductService
	customers    *services.CustomerService
	suppliers    *services.SupplierService
	warehouses   *services.WarehouseService
	employees    *services.EmployeeService
	accounts     *services.AccountService
	stock        *services.StockService
	invoices     *services.InvoiceService
	transactions *services.TransactionService
	dashboard    *services.DashboardService

	user *models.User
}

// NewApp wires the API client and the services from the given config.
func NewApp(c *config.Config) (*App, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := logging.NewConsoleLogger(os.Stderr, level)

	client, err := api.New(c.BaseURL,
		api.WithTimeout(c.RequestTimeout),
		api.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	deps := services.Deps{
		Client:  client,
		Log:     log,
		Notify:  consoleNotifier{w: os.Stdout},
		Retries: c.RetryCount,
	}

	app := &App{
		config:       c,
		log:          log,
		reader:       bufio.NewReader(os.Stdin),
		auth:         services.NewAuthService(deps),
		products:     services.NewProductService(deps),
		customers:    services.NewCustomerService(deps),
		suppliers:    services.NewSupplierService(deps),
		warehouses:   services.NewWarehouseService(deps),
		employees:    services.NewEmployeeService(deps),
		accounts:     services.NewAccountService(deps),
		stock:        services.NewStockService(deps),
		invoices:     services.NewInvoiceService(deps),
		transactions: services.NewTransactionService(deps),
	}
	app.dashboard = services.NewDashboardService(deps, app.stock, app.products, app.accounts)
	return app, nil
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// status renders the prompt suffix: username and store once logged in.
func (a *App) status() string {
	if a.user == nil {
		return ""
	}
	return "(" + a.user.Username + "@" + a.user.Store.Name + ")"
}

// Run starts the interactive shell and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	printlnFn("gestock CLI (tapez 'help' pour la liste des commandes)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}
