// Package schema holds the collection definitions for the Gala data layer
// and the registry that keeps their registration idempotent.
//
// # Registry
//
// Registry memoizes entity definitions by name. The first GetOrRegister for
// a name runs the factory and caches the result; every later call returns
// the cached definition and ignores the factory, so setup code can run any
// number of times in one process without duplicate-definition errors:
//
//	reg := schema.Default()
//	if err := reg.Apply(ctx, db); err != nil {
//	    // table or index creation failed
//	}
//
// # Definitions
//
// Two collections are defined:
//
//   - events: schemaless table, unique index events_slug_unique on slug
//   - bookings: schemaless table, index bookings_event_idx on event_id
//
// The unique slug index is load-bearing: the validation pipeline derives
// slugs but relies on the storage layer to reject duplicates. Statements
// use DEFINE ... OVERWRITE, so Apply is safe to run against an
// already-provisioned database.
package schema
