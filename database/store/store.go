// Package store is the synchronized collection store shared by every view.
// One implementation is chosen at startup: a live multi-client backend
// (Firestore or MongoDB) or the in-process fallback.
package store

import (
	"context"
	"errors"

	"barbershop/models"
)

// Collection names.
const (
	Reservations = "reservations"
	ShopItems    = "shopItems"
	Orders       = "orders"
	Users        = "users"
	WorkingDays  = "workingDays"
)

// ErrNotFound is returned by Get when the id is absent.
var ErrNotFound = errors.New("store: document not found")

// Document is a JSON-like record body.
type Document map[string]interface{}

// Record is a document together with its id.
type Record struct {
	ID   string
	Data Document
}

// ChangeFunc receives the full current contents of a collection.
type ChangeFunc func(records []Record)

// Store provides create/list/update/delete over named collections.
type Store interface {
	Mode() models.StoreMode

	// Create appends doc and returns the generated id.
	Create(ctx context.Context, collection string, doc Document) (string, error)
	// Set creates or replaces the document stored under id.
	Set(ctx context.Context, collection, id string, doc Document) error
	// Update merges the top-level fields of partial into the document. A
	// dotted key updates one nested field. It is a no-op when id does not exist.
	Update(ctx context.Context, collection, id string, partial Document) error
	// Remove deletes by id. Removing a missing id is not an error.
	Remove(ctx context.Context, collection, id string) error
	// Get returns ErrNotFound when id is absent.
	Get(ctx context.Context, collection, id string) (Document, error)
	List(ctx context.Context, collection string) ([]Record, error)

	// Subscribe calls fn once with the current contents and again after
	// every mutation of the collection. The returned func deregisters fn.
	// A writer always observes its own write in a later callback.
	Subscribe(ctx context.Context, collection string, fn ChangeFunc) (func(), error)

	Close() error
}
