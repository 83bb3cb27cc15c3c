// Package cli provides the interactive gestock command-line client.
//
// It wires configuration, the authenticated API client, and the entity
// services into an interactive REPL for day-to-day store management:
// catalog, partners, warehouses, stock movements, invoicing and the
// accounting ledger.
//
// Typical flow: prompt for store and credentials, then execute user
// commands until "exit". The REPL is started via App.Run(ctx), which
// blocks until the user exits.
package cli
