// Package store defines the persistence interfaces and sentinel errors
// shared by the service layer and the concrete database implementations.
package store
