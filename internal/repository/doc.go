// Package repository implements the data access layer for the Gala API.
//
// The repository package contains all database operations using SurrealDB.
// Each repository struct handles persistence for a specific domain entity.
//
// # Repository Pattern
//
// All repositories follow a consistent pattern:
//
//   - Constructor function (NewXxxRepository) accepts a database connection
//   - Methods implement specific data operations (Create, Get, Update, ExistsByID)
//   - SurrealQL queries are used for all database interactions
//   - Results are parsed and mapped to model structs
//
// # Database Connection
//
// Repositories accept a database.Database interface, allowing:
//
//   - Connection acquisition and lifecycle management at a higher level
//   - Easy testing with mock implementations
//
// # Query Patterns
//
// Common query patterns used:
//
//   - Parameterized queries with $variable syntax for security
//   - Client-side record ids minted with newRecordID for deterministic handles
//   - type::record() for safe ID handling
//   - time::now() for automatic timestamps
//
// Storage failures surface as wrapped sentinel errors from the database
// package: database.ErrDuplicate for unique index violations (an event slug
// collision) and database.ErrNotFound when a record id resolves to nothing.
// Callers branch with errors.Is rather than string matching.
//
// # Example Usage
//
//	repo := NewEventRepository(db)
//	event, err := repo.Get(ctx, "events:abc123")
//	if err != nil {
//	    return err
//	}
//	if event == nil {
//	    // Handle not found
//	}
package repository
