// Package database provides SurrealDB connectivity for the Gala data layer.
//
// The package has two jobs: the Database interface abstracting SurrealDB
// operations, and the Manager that owns the single shared connection for
// the whole process.
//
// # Connection Manager
//
// Manager memoizes the connection. The first Acquire dials; callers that
// arrive while the dial is outstanding join the same attempt, so at most
// one connection attempt is ever in flight regardless of concurrency. A
// failed attempt reports the same error to every waiter and resets the
// manager so a later Acquire may retry:
//
//	mgr := database.NewManager(cfg, 10*time.Second)
//	defer mgr.Close()
//
//	db, err := mgr.Acquire(ctx)
//
// Once connected, the handle is cached for the process lifetime. The
// manager never reconnects or health-checks on its own.
//
// # Database Interface
//
// Three query methods cover all access patterns:
//
//   - Query: multiple results (SELECT returning lists)
//   - QueryOne: single result (SELECT by record id); ErrNotFound when empty
//   - Execute: no results (CREATE/UPDATE/DELETE mutations)
//
// # Error Types
//
// Standard errors, checked with errors.Is():
//
//   - ErrConfiguration: required connection settings missing
//   - ErrConnection: dial, signin, or use failed
//   - ErrNotFound: record does not exist
//   - ErrDuplicate: unique constraint violation
//   - ErrQuery: query execution failure
//
// # Atomic Batches
//
// Transactions are batch-based: statements accumulate and execute together
// inside BEGIN TRANSACTION / COMMIT TRANSACTION. See AtomicBatch and
// TxBuilder in transaction.go.
package database
