// Package store defines the persistence interfaces used by the service
// layer, along with the sentinel errors all implementations share.
//
// Implementations live under internal/platform (currently PostgreSQL).
// Stores fetch and mutate rows by id alone; they do not make authorization
// decisions. Ownership filtering happens either in the service layer (for
// single-resource operations) or inside the per-user list queries that
// take an explicit user ID.
package store
