// Package testdb provides test database utilities for the Gala API.
//
// The testdb package manages test database connections with automatic
// setup, schema application, and cleanup. Tests that need a live database
// are skipped entirely unless TEST_DB_URL points at a running SurrealDB.
//
// # Test Database Setup
//
// Create a test database for each test:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    defer tdb.Close()
//
//	    // Use tdb.DB for database operations
//	}
//
// # Schema
//
// The table registry is automatically applied on setup:
//
//	tdb := testdb.New(t) // Defines tables and indexes
//
// # Isolation
//
// Each test gets an isolated database namespace:
//
//	func TestA(t *testing.T) {
//	    tdb := testdb.New(t) // namespace: test_..._1
//	}
//
//	func TestB(t *testing.T) {
//	    tdb := testdb.New(t) // namespace: test_..._2
//	}
//
// # Shared Database
//
// For subtests that share schema setup:
//
//	tdb := testdb.NewShared(t)
//	t.Run("create", func(t *testing.T) { ... })
//	t.Run("read", func(t *testing.T) { ... })
package testdb
