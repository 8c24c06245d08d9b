package schema

import (
	"context"
	"fmt"
	"sync"

	"github.com/forgo/gala/api/internal/database"
)

// Definition holds the SurrealQL statements that establish one collection:
// its table plus any indexes. Statements use OVERWRITE so re-applying an
// already-established definition is safe.
type Definition struct {
	Name       string
	Statements []string
}

// Registry caches entity definitions by name with get-or-create semantics.
// Registering a name twice never errors: the first call constructs and
// caches, every later call returns the original definition and ignores the
// factory. Repeated initialization (tests standing the layer up many times,
// setup re-running in a long-lived process) never trips
// duplicate-definition failures.
type Registry struct {
	mu    sync.Mutex
	defs  map[string]*Definition
	order []string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		defs: make(map[string]*Definition),
	}
}

// GetOrRegister returns the definition cached under name, invoking factory
// only if the name has never been registered. Safe for concurrent use.
func (r *Registry) GetOrRegister(name string, factory func() *Definition) *Definition {
	r.mu.Lock()
	defer r.mu.Unlock()

	if def, ok := r.defs[name]; ok {
		return def
	}

	def := factory()
	r.defs[name] = def
	r.order = append(r.order, name)
	return def
}

// Apply executes every registered definition's statements against db, in
// registration order. The first failure aborts and is returned wrapped with
// the definition it belongs to.
func (r *Registry) Apply(ctx context.Context, db database.Database) error {
	r.mu.Lock()
	defs := make([]*Definition, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.defs[name])
	}
	r.mu.Unlock()

	for _, def := range defs {
		for _, stmt := range def.Statements {
			if err := db.Execute(ctx, stmt, nil); err != nil {
				return fmt.Errorf("applying definition %s: %w", def.Name, err)
			}
		}
	}
	return nil
}

// EventDefinition returns the events collection: a schemaless table with a
// unique index on slug. The unique index is what rejects duplicate slugs at
// write time; the validation pipeline never disambiguates collisions itself.
func EventDefinition() *Definition {
	return &Definition{
		Name: "events",
		Statements: []string{
			"DEFINE TABLE OVERWRITE events SCHEMALESS",
			"DEFINE INDEX OVERWRITE events_slug_unique ON TABLE events COLUMNS slug UNIQUE",
		},
	}
}

// BookingDefinition returns the bookings collection: a schemaless table
// with an index on event_id for existence lookups.
func BookingDefinition() *Definition {
	return &Definition{
		Name: "bookings",
		Statements: []string{
			"DEFINE TABLE OVERWRITE bookings SCHEMALESS",
			"DEFINE INDEX OVERWRITE bookings_event_idx ON TABLE bookings COLUMNS event_id",
		},
	}
}

// Default returns a registry with the events and bookings definitions
// registered in apply order.
func Default() *Registry {
	r := NewRegistry()
	r.GetOrRegister("events", EventDefinition)
	r.GetOrRegister("bookings", BookingDefinition)
	return r
}
