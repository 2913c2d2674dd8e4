// Package mocks provides in-memory implementations of the store and
// service interfaces for testing. Each mock keeps state in maps and can be
// overridden per-method through function fields.
package mocks
