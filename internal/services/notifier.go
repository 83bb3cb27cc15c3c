// Package services contains the application services of the gestock
// client: one service per entity collection, built on the authenticated
// API client and the optimistic collection cache.
package services

// Notifier receives user-facing outcome messages from mutations.
// Validation failures are surfaced field by field; everything else
// collapses to a generic message.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	FieldErrors(fields map[string][]string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string)                  {}
func (NopNotifier) Error(string)                    {}
func (NopNotifier) FieldErrors(map[string][]string) {}
