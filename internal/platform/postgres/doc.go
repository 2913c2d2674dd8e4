// Package postgres provides PostgreSQL implementations of the store
// interfaces. Stores translate database errors into the sentinel errors
// defined in the store package so callers never depend on driver types.
//
// With the exception of PostgresTaskStore, which manages its own
// transactions for multi-table writes, stores operate on the store.DBTX
// abstraction and run each call as a single statement.
package postgres
