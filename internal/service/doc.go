// Package service contains the application's business logic: the auth
// flows (registration, login) and the ownership-scoped resource services
// for tasks, categories and tags.
//
// Ownership is enforced here, not in the stores. Single-resource
// operations fetch by id and compare the owner; list operations pass the
// owner into the store so the filter runs inside the query. An owned
// resource that belongs to another user is always reported as not found,
// so existence is never confirmed to non-owners.
package service
