// Package store defines the persistence interfaces for every resource the API
// serves, along with the errors their implementations return. Handlers depend
// on these interfaces only; the database/sql implementation lives in
// internal/platform/sqlstore.
package store
