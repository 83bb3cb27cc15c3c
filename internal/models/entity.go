// Package models defines the business records exposed by the store-management
// API: catalog, stock movements, invoicing, and the financial ledger. Field
// sets mirror the backend's JSON representation; monetary values use
// shopspring decimals (the backend serializes them as strings).
package models

// Entity is implemented by every business record held in a cached
// collection. Server-assigned IDs are positive; provisional records
// inserted optimistically carry negative placeholder IDs.
type Entity interface {
	EntityID() int64
}
